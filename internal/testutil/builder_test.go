package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/kvjson/internal/editor"
)

func TestBuilder_WithPair(t *testing.T) {
	s := NewBuilder(t).
		WithPair("name", "Ann").
		WithPair("age", "30").
		Build()

	require.Equal(t, editor.Browsing{}, s.Mode())
	require.Equal(t, map[string]string{"name": "Ann", "age": "30"}, s.Store().Map())
	require.Empty(t, s.KeyDraft())
}

func TestBuilder_WithDraft(t *testing.T) {
	s := NewBuilder(t).
		WithPair("a", "1").
		WithDraft(WithKeyText("ke"), WithValueText("val"), WithFocus(editor.FocusValue)).
		Build()

	require.Equal(t, editor.Editing{Focus: editor.FocusValue}, s.Mode())
	require.Equal(t, "ke", s.KeyDraft())
	require.Equal(t, "val", s.ValueDraft())
	require.Equal(t, 1, s.Store().Len())
}

func TestBuilder_WithDraftDefaultsToKeyFocus(t *testing.T) {
	s := NewBuilder(t).WithDraft(WithValueText("v")).Build()

	require.Equal(t, editor.Editing{Focus: editor.FocusKey}, s.Mode())
	require.Equal(t, "v", s.ValueDraft())
}

func TestBuilder_WithExitPrompt(t *testing.T) {
	s := NewBuilder(t).WithPair("k", "v").WithExitPrompt().Build()

	require.Equal(t, editor.ConfirmingExit{}, s.Mode())
}
