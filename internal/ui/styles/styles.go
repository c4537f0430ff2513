// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, inactive labels

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Browsing mode, title
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#C29B1E", Dark: "#FECA57"} // Editing mode, entries
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Exit prompt, key hints

	// Focused input box border
	AccentColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#54A0FF"}

	// Popup background
	PopupBgColor = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#3A3A3A"}
)

// Styles derived from the colors above. Rebuilt by ApplyTheme.
var (
	TitleStyle     lipgloss.Style
	EntryKeyStyle  lipgloss.Style
	EntrySepStyle  lipgloss.Style
	EntryValStyle  lipgloss.Style
	EmptyStyle     lipgloss.Style
	ModeBrowse     lipgloss.Style
	ModeEdit       lipgloss.Style
	ModeExit       lipgloss.Style
	FocusLabel     lipgloss.Style
	FocusNoneLabel lipgloss.Style
	HintStyle      lipgloss.Style
	DividerStyle   lipgloss.Style
	PromptStyle    lipgloss.Style
	PopupStyle     lipgloss.Style
)

func init() {
	rebuild()
}

func rebuild() {
	TitleStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	EntryKeyStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)
	EntrySepStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	EntryValStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	EmptyStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Italic(true)
	ModeBrowse = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	ModeEdit = lipgloss.NewStyle().Foreground(StatusWarningColor).Bold(true)
	ModeExit = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	FocusLabel = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	FocusNoneLabel = lipgloss.NewStyle().Foreground(TextMutedColor)
	HintStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	DividerStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	PromptStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	PopupStyle = lipgloss.NewStyle().Background(PopupBgColor).Padding(1, 2)
}

// ApplyTheme applies custom theme colors from configuration.
// Empty strings are ignored, keeping the default values.
// - accent: AccentColor (focused input box)
// - muted: TextMutedColor + BorderDefaultColor (hints, separators, borders)
// - errorColor: StatusErrorColor (exit prompt, key hints)
// - success: StatusSuccessColor (title, browsing label)
func ApplyTheme(accent, muted, errorColor, success string) {
	if accent != "" {
		AccentColor = lipgloss.AdaptiveColor{Light: accent, Dark: accent}
	}
	if muted != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
		BorderDefaultColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
	}
	rebuild()
}
