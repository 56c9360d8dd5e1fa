// Package button provides invokers for commands.
//
// A SimpleButton keeps two stacks of command snapshots:
//
//	prev: executed commands, most recent last
//	next: undone commands, most recent last
//
// Click duplicates the held template, executes the duplicate and pushes it
// onto prev. Unclick moves the top of prev to next through Undo, Reclick
// moves the top of next back to prev through Redo. Because every click
// stores its own duplicate, each history entry keeps the addend that was
// live when it was clicked.
//
// A PlainButton executes its command directly and keeps no history.
package button
