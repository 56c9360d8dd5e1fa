package console

import (
	"io"

	"github.com/sandevgo/undoable/internal/cell"
	"github.com/sandevgo/undoable/internal/core"
)

func NewActions(
	button core.Button,
	accumulator *cell.Cell,
	addend *cell.Cell,
	out io.Writer,
) []core.Action {
	return []core.Action{
		&ClickAction{button: button},
		&UnclickAction{button: button},
		&ReclickAction{button: button},
		&SetAction{addend: addend},
		&ShowAction{
			accumulator: accumulator,
			addend:      addend,
			button:      button,
			out:         out,
		},
	}
}
