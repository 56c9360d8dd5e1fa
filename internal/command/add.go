package command

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/undoable/internal/cell"
	"github.com/sandevgo/undoable/internal/core"
	"github.com/sandevgo/undoable/pkg/log"
)

// Add increments a shared accumulator by an addend.
//
// The addend is read when Execute runs; Undo and Redo replay the value
// recorded by the latest Execute, so later changes to a live addend cell
// do not affect them.
type Add struct {
	accumulator *cell.Cell
	addend      cell.Source
	out         io.Writer

	lastAddend int
	recorded   bool
}

func NewAdd(accumulator *cell.Cell, addend cell.Source, out io.Writer) *Add {
	return &Add{
		accumulator: accumulator,
		addend:      addend,
		out:         out,
	}
}

func (c *Add) Execute(ctx context.Context) error {
	a := c.accumulator.Value()
	b := c.addend.Value()

	sum, ok := addChecked(a, b)
	if !ok {
		return fmt.Errorf("executing addition %d + %d: %w", a, b, core.ErrOverflow)
	}

	fmt.Fprintf(c.out, "executing addition: %d + %d = %d\n", a, b, sum)
	c.accumulator.Set(sum)
	c.lastAddend = b
	c.recorded = true

	log.FromCtx(ctx).Debug().
		Int("accumulator", sum).
		Int("addend", b).
		Msg("addition executed")
	return nil
}

func (c *Add) Undo(ctx context.Context) error {
	if !c.recorded {
		return fmt.Errorf("%w: Undo should not be called before execute", core.ErrPrecondition)
	}

	s := c.accumulator.Value()
	diff, ok := subChecked(s, c.lastAddend)
	if !ok {
		return fmt.Errorf("undoing addition %d - %d: %w", s, c.lastAddend, core.ErrOverflow)
	}

	fmt.Fprintf(c.out, "Undoing addition: %d - %d = %d\n", s, c.lastAddend, diff)
	c.accumulator.Set(diff)

	log.FromCtx(ctx).Debug().
		Int("accumulator", diff).
		Int("addend", c.lastAddend).
		Msg("addition undone")
	return nil
}

func (c *Add) Redo(ctx context.Context) error {
	if !c.recorded {
		return fmt.Errorf("%w: Redo should not be called before undo/execute", core.ErrPrecondition)
	}

	a := c.accumulator.Value()
	sum, ok := addChecked(a, c.lastAddend)
	if !ok {
		return fmt.Errorf("redoing addition %d + %d: %w", a, c.lastAddend, core.ErrOverflow)
	}

	fmt.Fprintf(c.out, "redoing addition: %d + %d = %d\n", a, c.lastAddend, sum)
	c.accumulator.Set(sum)

	log.FromCtx(ctx).Debug().
		Int("accumulator", sum).
		Int("addend", c.lastAddend).
		Msg("addition redone")
	return nil
}

// Duplicate copies the recorded addend. The accumulator and a live addend cell stay shared.
func (c *Add) Duplicate() core.Command {
	dup := *c
	return &dup
}

// LastAddend reports the addend used by the latest Execute, if any.
func (c *Add) LastAddend() (int, bool) {
	return c.lastAddend, c.recorded
}
