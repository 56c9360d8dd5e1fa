package command

import (
	"context"
	"fmt"
	"io"

	"github.com/sandevgo/undoable/internal/core"
	"github.com/sandevgo/undoable/pkg/log"
)

// DollarGiver narrates handing over a dollar. It carries no state and never fails.
type DollarGiver struct {
	out io.Writer
}

func NewDollarGiver(out io.Writer) *DollarGiver {
	return &DollarGiver{out: out}
}

func (d *DollarGiver) Execute(ctx context.Context) error {
	fmt.Fprintln(d.out, "*Gives you a dollar*")
	log.FromCtx(ctx).Debug().Msg("dollar given")
	return nil
}

func (d *DollarGiver) Undo(ctx context.Context) error {
	fmt.Fprintln(d.out, "*Takes your dollar back :(*")
	log.FromCtx(ctx).Debug().Msg("dollar taken back")
	return nil
}

func (d *DollarGiver) Redo(ctx context.Context) error {
	fmt.Fprintln(d.out, "*Gives you a dollar again*")
	log.FromCtx(ctx).Debug().Msg("dollar given again")
	return nil
}

func (d *DollarGiver) Duplicate() core.Command {
	return &DollarGiver{out: d.out}
}
