package ui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/undoable/internal/cell"
	"github.com/sandevgo/undoable/internal/core"
	"github.com/sandevgo/undoable/pkg/log"
)

// maxTraceLines is how many trace lines the screen keeps.
const maxTraceLines = 12

// PlayModel is an interactive button. Commands write their traces into
// trace; the model drains it after every action.
type PlayModel struct {
	ctx         context.Context
	router      core.ActionRouter
	button      core.Button
	accumulator *cell.Cell
	addend      *cell.Cell
	trace       *bytes.Buffer

	lines    []string
	input    textinput.Model
	editing  bool
	err      error
	quitting bool
}

func NewPlayModel(
	ctx context.Context,
	router core.ActionRouter,
	button core.Button,
	accumulator *cell.Cell,
	addend *cell.Cell,
	trace *bytes.Buffer,
) PlayModel {
	ti := textinput.New()
	ti.Placeholder = "new addend"
	ti.CharLimit = 20

	return PlayModel{
		ctx:         ctx,
		router:      router,
		button:      button,
		accumulator: accumulator,
		addend:      addend,
		trace:       trace,
		input:       ti,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.editing {
		return m.updateInput(key)
	}

	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "c":
		m = m.run("click")
	case "u":
		m = m.run("unclick")
	case "r":
		m = m.run("reclick")
	case "s":
		m.editing = true
		m.err = nil
		cmd := m.input.Focus()
		return m, cmd
	}
	return m, nil
}

func (m PlayModel) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "enter":
		val := strings.TrimSpace(m.input.Value())
		m.editing = false
		m.input.Blur()
		m.input.Reset()
		return m.run("set " + val), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// run routes one action; errors are shown, never fatal here.
func (m PlayModel) run(action string) PlayModel {
	m.err = m.router.Execute(m.ctx, action)
	if m.err != nil {
		log.FromCtx(m.ctx).Debug().Err(m.err).Str("action", action).Msg("action failed")
	}

	if m.trace.Len() > 0 {
		m.lines = append(m.lines, strings.Split(strings.TrimRight(m.trace.String(), "\n"), "\n")...)
		m.trace.Reset()
	}
	if len(m.lines) > maxTraceLines {
		m.lines = m.lines[len(m.lines)-maxTraceLines:]
	}
	return m
}

func (m PlayModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("undoable button") + "\n")

	b.WriteString(fmt.Sprintf("accumulator: %s   addend: %s   undo: %s   redo: %s\n\n",
		ValueStyle.Render(m.accumulator.String()),
		ValueStyle.Render(m.addend.String()),
		ValueStyle.Render(fmt.Sprint(m.button.UndoCount())),
		ValueStyle.Render(fmt.Sprint(m.button.RedoCount())),
	))

	for _, line := range m.lines {
		b.WriteString(UsageStyle.Render(line) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	if m.editing {
		b.WriteString("\nSet addend:\n\n" + m.input.View() + "\n\n")
		b.WriteString(DescStyle.Render("(enter to confirm, esc to cancel)") + "\n")
		return b.String()
	}

	b.WriteString("\n" + DescStyle.Render("c click • u unclick • r reclick • s set addend • q quit") + "\n")
	return b.String()
}

// Quitting reports whether the user asked to leave.
func (m PlayModel) Quitting() bool {
	return m.quitting
}

// RunPlay starts the TUI and blocks until the user quits.
func RunPlay(ctx context.Context, m PlayModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play session failed: %w", err)
	}
	return nil
}
