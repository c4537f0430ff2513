// Package testutil builds editor states for tests by driving the public
// operations, so every state a test starts from is one a user could reach.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/kvjson/internal/editor"
)

type pairData struct {
	key   string
	value string
}

type draftData struct {
	key   string
	value string
	focus editor.Focus
}

// DraftOption configures the open draft.
type DraftOption func(*draftData)

// WithKeyText sets the text typed into the key draft.
func WithKeyText(s string) DraftOption {
	return func(d *draftData) { d.key = s }
}

// WithValueText sets the text typed into the value draft.
func WithValueText(s string) DraftOption {
	return func(d *draftData) { d.value = s }
}

// WithFocus sets which draft has focus once typing is done.
func WithFocus(f editor.Focus) DraftOption {
	return func(d *draftData) { d.focus = f }
}

// Builder accumulates pairs and a final mode, then replays them.
type Builder struct {
	t        testing.TB
	pairs    []pairData
	draft    *draftData
	exitOpen bool
}

// NewBuilder creates a builder that fails t on any rejected operation.
func NewBuilder(t testing.TB) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithPair commits key=value through the editing popup.
func (b *Builder) WithPair(key, value string) *Builder {
	b.pairs = append(b.pairs, pairData{key, value})
	return b
}

// WithDraft leaves the editor in editing mode with the given drafts.
func (b *Builder) WithDraft(opts ...DraftOption) *Builder {
	d := draftData{focus: editor.FocusKey}
	for _, opt := range opts {
		opt(&d)
	}
	b.draft = &d
	return b
}

// WithExitPrompt leaves the editor asking whether to print.
func (b *Builder) WithExitPrompt() *Builder {
	b.exitOpen = true
	return b
}

// Build replays pairs first, then the draft or exit prompt.
func (b *Builder) Build() *editor.State {
	b.t.Helper()
	require.False(b.t, b.draft != nil && b.exitOpen, "a draft and the exit prompt cannot both be open")

	s := editor.New()
	for _, p := range b.pairs {
		b.begin(s)
		b.typeText(s, p.key)
		require.True(b.t, s.Advance())
		b.typeText(s, p.value)
		require.True(b.t, s.Advance())
	}

	switch {
	case b.draft != nil:
		b.begin(s)
		b.typeText(s, b.draft.key)
		require.True(b.t, s.ToggleFocus())
		b.typeText(s, b.draft.value)
		if b.draft.focus == editor.FocusKey {
			require.True(b.t, s.ToggleFocus())
		}
	case b.exitOpen:
		require.True(b.t, s.RequestExit())
	}
	return s
}

func (b *Builder) begin(s *editor.State) {
	b.t.Helper()
	require.True(b.t, s.BeginNewPair(), "new pair rejected in mode %s", s.Mode())
}

func (b *Builder) typeText(s *editor.State, text string) {
	b.t.Helper()
	for _, r := range text {
		require.True(b.t, s.AppendChar(r))
	}
}
