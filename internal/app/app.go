// Package app contains the root application model.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/kvjson/internal/editor"
	"github.com/zjrosen/kvjson/internal/input"
	"github.com/zjrosen/kvjson/internal/log"
	"github.com/zjrosen/kvjson/internal/ui/frame"
)

// Model is the root application state. It owns the editor state and feeds it
// one translated key event at a time.
type Model struct {
	state *editor.State
	opts  frame.Options
}

// New creates a Model around a fresh editor in browsing mode.
func New(opts frame.Options) Model {
	return Model{
		state: editor.New(),
		opts:  opts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		log.Debug(log.CatUI, "window resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case tea.KeyMsg:
		events := input.Split(msg)
		for i, ev := range events {
			if cmd := m.handleKey(ev); cmd != nil {
				if rest := len(events) - i - 1; rest > 0 {
					log.Debug(log.CatInput, "keys after exit dropped", "count", rest)
				}
				return m, cmd
			}
		}
		return m, nil
	}

	return m, nil
}

// handleKey translates ev against the current mode and dispatches the result.
// It returns tea.Quit once the session is over.
func (m Model) handleKey(ev input.KeyEvent) tea.Cmd {
	events := input.Translate(m.state.Mode(), ev)
	if len(events) == 0 {
		log.Debug(log.CatInput, "key dropped", "key", ev.Key, "kind", ev.Kind, "mode", m.state.Mode())
		return nil
	}

	for _, e := range events {
		before := m.state.Mode()
		out := m.state.Dispatch(e)
		if !out.Applied {
			log.Debug(log.CatEditor, "event ignored", "event", e.Kind, "mode", before)
			continue
		}

		after := m.state.Mode()
		if after != before {
			log.Debug(log.CatEditor, "transition", "event", e.Kind, "from", before, "to", after)
		}
		if _, wasEditing := before.(editor.Editing); wasEditing && e.Kind == editor.EventConfirm {
			if _, browsing := after.(editor.Browsing); browsing {
				log.Info(log.CatEditor, "pair committed", "entries", m.state.Store().Len())
			}
		}

		if out.Done {
			log.Info(log.CatSession, "session finished", "print", out.Print, "entries", m.state.Store().Len())
			return tea.Quit
		}
	}
	return nil
}

// View implements tea.Model.
func (m Model) View() string {
	if _, done := m.state.Done(); done {
		return ""
	}
	return frame.Render(m.state, m.opts)
}

// Result reports whether the session finished and whether the store should be
// written out.
func (m Model) Result() (shouldPrint, done bool) {
	return m.state.Done()
}

// Pairs returns a copy of the committed key-value pairs.
func (m Model) Pairs() map[string]string {
	return m.state.Store().Map()
}

// State exposes the editor state for inspection.
func (m Model) State() *editor.State {
	return m.state
}
