package button

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/undoable/internal/core"
	"github.com/sandevgo/undoable/pkg/log"
)

const (
	clickSound   = "*click*"
	unclickSound = "*kcilc*"
	reclickSound = "*click?*"
)

// SimpleButton is an invoker with undo/redo history.
type SimpleButton struct {
	template core.Command
	out      io.Writer

	prev []core.Command
	next []core.Command
}

func NewSimpleButton(template core.Command, out io.Writer) *SimpleButton {
	return &SimpleButton{
		template: template,
		out:      out,
	}
}

// Click runs a fresh duplicate of the template and records it.
// Click leaves the redo stack untouched.
func (b *SimpleButton) Click(ctx context.Context) error {
	fmt.Fprintln(b.out, clickSound)

	cmd := b.template.Duplicate()
	if err := cmd.Execute(ctx); err != nil {
		return fmt.Errorf("click: %w", err)
	}
	b.prev = append(b.prev, cmd)

	b.logState(ctx, "clicked")
	return nil
}

func (b *SimpleButton) Unclick(ctx context.Context) error {
	if len(b.prev) == 0 {
		return fmt.Errorf("%w: You shouldn't unclick before clicking!", core.ErrPrecondition)
	}
	fmt.Fprintln(b.out, unclickSound)

	cmd := b.prev[len(b.prev)-1]
	b.prev = b.prev[:len(b.prev)-1]

	if err := cmd.Undo(ctx); err != nil {
		// Restore entry on failure
		b.prev = append(b.prev, cmd)
		return fmt.Errorf("unclick: %w", err)
	}
	b.next = append(b.next, cmd)

	b.logState(ctx, "unclicked")
	return nil
}

func (b *SimpleButton) Reclick(ctx context.Context) error {
	if len(b.next) == 0 {
		return fmt.Errorf("%w: You shouldn't reclick before unclicking!", core.ErrPrecondition)
	}
	fmt.Fprintln(b.out, reclickSound)

	cmd := b.next[len(b.next)-1]
	b.next = b.next[:len(b.next)-1]

	if err := cmd.Redo(ctx); err != nil {
		b.next = append(b.next, cmd)
		return fmt.Errorf("reclick: %w", err)
	}
	b.prev = append(b.prev, cmd)

	b.logState(ctx, "reclicked")
	return nil
}

// UndoCount returns the depth of the prev stack.
func (b *SimpleButton) UndoCount() int {
	return len(b.prev)
}

// RedoCount returns the depth of the next stack.
func (b *SimpleButton) RedoCount() int {
	return len(b.next)
}

func (b *SimpleButton) logState(ctx context.Context, msg string) {
	log.FromCtx(ctx).Debug().
		Int("prev", len(b.prev)).
		Int("next", len(b.next)).
		Msg(msg)
}
