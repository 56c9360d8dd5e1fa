package button

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/undoable/internal/core"
)

// PlainButton executes its command on every click, with no history.
type PlainButton struct {
	command core.Command
	out     io.Writer
}

func NewPlainButton(command core.Command, out io.Writer) *PlainButton {
	return &PlainButton{
		command: command,
		out:     out,
	}
}

func (b *PlainButton) Click(ctx context.Context) error {
	fmt.Fprintln(b.out, clickSound)
	if err := b.command.Execute(ctx); err != nil {
		return fmt.Errorf("click: %w", err)
	}
	return nil
}
