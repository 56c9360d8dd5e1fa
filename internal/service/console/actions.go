package console

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/sandevgo/undoable/internal/cell"
	"github.com/sandevgo/undoable/internal/core"
)

type ClickAction struct {
	button core.Clicker
}

func (a *ClickAction) Name() string        { return "click" }
func (a *ClickAction) Description() string { return "Execute a new copy of the command" }

func (a *ClickAction) Execute(ctx context.Context, args []string) error {
	return a.button.Click(ctx)
}

type UnclickAction struct {
	button core.Button
}

func (a *UnclickAction) Name() string        { return "unclick" }
func (a *UnclickAction) Description() string { return "Undo the latest click" }

func (a *UnclickAction) Execute(ctx context.Context, args []string) error {
	return a.button.Unclick(ctx)
}

type ReclickAction struct {
	button core.Button
}

func (a *ReclickAction) Name() string        { return "reclick" }
func (a *ReclickAction) Description() string { return "Redo the latest unclick" }

func (a *ReclickAction) Execute(ctx context.Context, args []string) error {
	return a.button.Reclick(ctx)
}

// SetAction assigns the live addend cell read by the next click.
type SetAction struct {
	addend *cell.Cell
}

func (a *SetAction) Name() string        { return "set" }
func (a *SetAction) Description() string { return "Set the addend used by the next click: set N" }

func (a *SetAction) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("set: expected exactly one value, got %d", len(args))
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("set: invalid value %q: %w", args[0], err)
	}
	a.addend.Set(v)
	return nil
}

type ShowAction struct {
	accumulator *cell.Cell
	addend      *cell.Cell
	button      core.Button
	out         io.Writer
}

func (a *ShowAction) Name() string        { return "show" }
func (a *ShowAction) Description() string { return "Print the accumulator, addend and history depth" }

func (a *ShowAction) Execute(ctx context.Context, args []string) error {
	_, err := fmt.Fprintf(a.out, "accumulator=%d addend=%d undo=%d redo=%d\n",
		a.accumulator.Value(), a.addend.Value(), a.button.UndoCount(), a.button.RedoCount())
	return err
}
