// Package frame renders the editor state as a full terminal screen. Rendering
// is a pure function of the state and never feeds anything back into it.
package frame

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/kvjson/internal/editor"
	"github.com/zjrosen/kvjson/internal/keys"
	"github.com/zjrosen/kvjson/internal/ui/overlay"
	"github.com/zjrosen/kvjson/internal/ui/styles"
)

// Fallback screen size used before the terminal reports its dimensions.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Options controls layout.
type Options struct {
	Width     int
	Height    int
	Title     string
	KeyWidth  int  // column width keys are padded to in the listing
	ShowCount bool // append the entry count to the title
}

// Labels shown in the footer.
const (
	LabelBrowsing     = "Normal Mode"
	LabelEditing      = "Editing Mode"
	LabelExiting      = "Exiting"
	LabelEditingKey   = "Editing JSON Key"
	LabelEditingValue = "Editing JSON Value"
	LabelNotEditing   = "Not Editing Anything"

	PopupTitle  = "Enter a new key-value pair"
	ExitPrompt  = "Would you like to output the buffer as JSON? (y/n)"
	EmptyNotice = "No pairs yet"
)

const (
	boxHeight = 3 // one content line plus top and bottom border
	entrySep  = " : "
)

// Render draws the whole screen for s.
func Render(s *editor.State, opts Options) string {
	opts = withDefaults(opts)

	if _, ok := s.Mode().(editor.ConfirmingExit); ok {
		return renderExitPrompt(opts)
	}

	listHeight := max(opts.Height-2*boxHeight, 0)
	sections := []string{renderTitle(s, opts)}
	if listHeight > 0 {
		sections = append(sections, renderListing(s.Store().Entries(), opts, listHeight))
	}
	sections = append(sections, renderFooter(s, opts))
	screen := strings.Join(sections, "\n")

	if e, ok := s.Mode().(editor.Editing); ok {
		screen = overlay.Center(renderPopup(s, e.Focus, opts), screen, opts.Width, opts.Height)
	}
	return screen
}

func withDefaults(opts Options) Options {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.KeyWidth <= 0 {
		opts.KeyWidth = 25
	}
	return opts
}

func renderTitle(s *editor.State, opts Options) string {
	title := opts.Title
	if opts.ShowCount {
		title = fmt.Sprintf("%s (%d)", title, s.Store().Len())
	}
	return styles.RenderBox([]string{" " + styles.TitleStyle.Render(title)}, "", opts.Width, false)
}

// renderListing shows one "key : value" line per entry, padded to height.
// When entries overflow, the last visible line says how many are hidden.
func renderListing(entries []editor.Entry, opts Options, height int) string {
	lines := make([]string, 0, height)
	if len(entries) == 0 {
		lines = append(lines, " "+styles.EmptyStyle.Render(EmptyNotice))
	}

	visible := entries
	if len(entries) > height {
		visible = entries[:height-1]
	}
	for _, e := range visible {
		lines = append(lines, renderEntry(e, opts))
	}
	if hidden := len(entries) - len(visible); hidden > 0 {
		lines = append(lines, " "+styles.EmptyStyle.Render(fmt.Sprintf("… %d more", hidden)))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderEntry(e editor.Entry, opts Options) string {
	keyCell := runewidth.FillRight(e.Key, opts.KeyWidth)
	line := " " + keyCell + entrySep + e.Value
	if runewidth.StringWidth(line) > opts.Width {
		line = truncate.StringWithTail(line, uint(opts.Width), "…")
	}

	// Style after truncation so the cut never lands inside an escape sequence.
	keyPart, valuePart, found := strings.Cut(line, entrySep)
	if !found {
		return styles.EntryKeyStyle.Render(line)
	}
	return styles.EntryKeyStyle.Render(keyPart) +
		styles.EntrySepStyle.Render(entrySep) +
		styles.EntryValStyle.Render(valuePart)
}

func renderFooter(s *editor.State, opts Options) string {
	modeLabel, focusLabel := footerLabels(s)
	status := " " + modeLabel + styles.DividerStyle.Render(" | ") + focusLabel

	// The status box grows to fit its labels; hints get the rest.
	leftWidth := min(max(opts.Width*45/100, lipgloss.Width(status)+2), opts.Width)
	rightWidth := opts.Width - leftWidth

	left := styles.RenderBox([]string{status}, "", leftWidth, false)

	h := help.New()
	h.ShortSeparator = " | "
	h.Width = max(rightWidth-3, 1)
	h.Styles.ShortKey = styles.HintStyle.Bold(true)
	h.Styles.ShortDesc = styles.HintStyle
	h.Styles.ShortSeparator = styles.DividerStyle
	right := styles.RenderBox([]string{" " + h.ShortHelpView(hintBindings(s.Mode()))}, "", rightWidth, false)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func footerLabels(s *editor.State) (modeLabel, focusLabel string) {
	focusLabel = styles.FocusNoneLabel.Render(LabelNotEditing)
	switch m := s.Mode().(type) {
	case editor.Editing:
		modeLabel = styles.ModeEdit.Render(LabelEditing)
		if m.Focus == editor.FocusKey {
			focusLabel = styles.FocusLabel.Render(LabelEditingKey)
		} else {
			focusLabel = styles.FocusLabel.Render(LabelEditingValue)
		}
	case editor.ConfirmingExit, editor.Exited:
		modeLabel = styles.ModeExit.Render(LabelExiting)
	default:
		modeLabel = styles.ModeBrowse.Render(LabelBrowsing)
	}
	return modeLabel, focusLabel
}

func hintBindings(mode editor.Mode) []key.Binding {
	switch mode.(type) {
	case editor.Editing:
		return keys.Edit.ShortHelp()
	case editor.ConfirmingExit:
		return keys.Exit.ShortHelp()
	default:
		return keys.Browse.ShortHelp()
	}
}

// renderPopup draws the Key and Value boxes side by side, the focused box
// highlighted. The popup takes 60% of the screen width.
func renderPopup(s *editor.State, focus editor.Focus, opts Options) string {
	popupWidth := max(opts.Width*60/100, 20)
	inner := popupWidth - 4 // PopupStyle horizontal padding
	keyWidth := inner / 2
	valueWidth := inner - keyWidth

	keyBox := styles.RenderBox([]string{tail(s.KeyDraft(), keyWidth-2)}, "Key", keyWidth, focus == editor.FocusKey)
	valueBox := styles.RenderBox([]string{tail(s.ValueDraft(), valueWidth-2)}, "Value", valueWidth, focus == editor.FocusValue)

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(PopupTitle),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, keyBox, valueBox),
	)
	return styles.PopupStyle.Width(popupWidth).Render(body)
}

// tail keeps the end of a draft visible so the cursor side stays on screen.
// Whole grapheme clusters are dropped from the front.
func tail(text string, width int) string {
	if width <= 0 {
		return ""
	}
	remaining := uniseg.StringWidth(text)
	if remaining <= width {
		return text
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		remaining -= g.Width()
		if remaining <= width {
			_, to := g.Positions()
			return text[to:]
		}
	}
	return ""
}

// renderExitPrompt replaces the whole screen with the y/n question.
func renderExitPrompt(opts Options) string {
	h := help.New()
	h.ShortSeparator = " | "
	hints := h.ShortHelpView(keys.Exit.ShortHelp())

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.PromptStyle.Render(ExitPrompt),
		"",
		hints,
	)
	popup := styles.PopupStyle.Render(body)
	return lipgloss.Place(opts.Width, opts.Height, lipgloss.Center, lipgloss.Center, popup)
}
