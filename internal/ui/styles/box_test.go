package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestRenderBox(t *testing.T) {
	tests := []struct {
		name           string
		content        []string
		title          string
		width          int
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:         "title in top border",
			content:      []string{"abc"},
			title:        "Key",
			width:        20,
			wantContains: []string{"╭─ Key ", "│abc", "╰", "╯"},
		},
		{
			name:           "empty title renders plain border",
			content:        []string{"abc"},
			title:          "",
			width:          10,
			wantContains:   []string{"╭────────╮"},
			wantNotContain: []string{"╭─ "},
		},
		{
			name:         "long content is truncated",
			content:      []string{"0123456789abcdef"},
			title:        "Value",
			width:        10,
			wantContains: []string{"│0123456…│"},
		},
		{
			name:           "narrow box drops the title",
			content:        []string{""},
			title:          "Value",
			width:          5,
			wantNotContain: []string{"Value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(RenderBox(tt.content, tt.title, tt.width, false))
			for _, want := range tt.wantContains {
				require.Contains(t, got, want)
			}
			for _, notWant := range tt.wantNotContain {
				require.NotContains(t, got, notWant)
			}
		})
	}
}

func TestRenderBox_LinesHaveBoxWidth(t *testing.T) {
	got := RenderBox([]string{"a", "日本語"}, "Title", 16, true)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Equal(t, 16, lipgloss.Width(line), "line %q", ansi.Strip(line))
	}
}

func TestRenderBox_FocusChangesBorderColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	focused := RenderBox([]string{"x"}, "Key", 20, true)
	unfocused := RenderBox([]string{"x"}, "Key", 20, false)

	require.NotEqual(t, focused, unfocused)
	require.Equal(t, ansi.Strip(focused), ansi.Strip(unfocused))
}

func TestApplyTheme_EmptyKeepsDefaults(t *testing.T) {
	before := StatusErrorColor

	ApplyTheme("", "", "", "")

	require.Equal(t, before, StatusErrorColor)
}

func TestApplyTheme_OverridesColors(t *testing.T) {
	saved := []lipgloss.AdaptiveColor{AccentColor, TextMutedColor, BorderDefaultColor, StatusErrorColor, StatusSuccessColor}
	defer func() {
		AccentColor, TextMutedColor, BorderDefaultColor, StatusErrorColor, StatusSuccessColor =
			saved[0], saved[1], saved[2], saved[3], saved[4]
		rebuild()
	}()

	ApplyTheme("#111111", "#222222", "#333333", "#444444")

	require.Equal(t, "#111111", AccentColor.Dark)
	require.Equal(t, "#222222", TextMutedColor.Dark)
	require.Equal(t, "#222222", BorderDefaultColor.Light)
	require.Equal(t, "#333333", StatusErrorColor.Dark)
	require.Equal(t, "#444444", StatusSuccessColor.Dark)
}
