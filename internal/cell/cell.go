// Package cell holds shared mutable integers.
//
// A *Cell is a shared handle: every holder of the same pointer sees and
// mutates the same value. Cells are not safe for concurrent use.
package cell

import "strconv"

// Source yields the current integer value of something.
type Source interface {
	Value() int
}

type Cell struct {
	v int
}

func New(v int) *Cell {
	return &Cell{v: v}
}

func (c *Cell) Value() int {
	return c.v
}

func (c *Cell) Set(v int) {
	c.v = v
}

func (c *Cell) String() string {
	return strconv.Itoa(c.v)
}

// Fixed is a Source captured once and never changing.
type Fixed int

func (f Fixed) Value() int {
	return int(f)
}
