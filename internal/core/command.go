package core

import "context"

// Command is an action that can be applied, reverted and replayed.
type Command interface {
	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
	// Duplicate returns an independent copy. Shared cells stay shared.
	Duplicate() Command
}

type Clicker interface {
	Click(ctx context.Context) error
}

// Button is an invoker that keeps undo/redo history.
type Button interface {
	Clicker
	Unclick(ctx context.Context) error
	Reclick(ctx context.Context) error
	UndoCount() int
	RedoCount() int
}

type ActionRouter interface {
	Execute(ctx context.Context, input string) error
	ListActions() []Action
}

// Action is a named console operation, e.g. "click" or "set 4".
type Action interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args []string) error
}
