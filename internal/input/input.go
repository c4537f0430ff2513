// Package input turns terminal key events into editor events, using the
// keymap of whichever mode the editor is in.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/kvjson/internal/editor"
	"github.com/zjrosen/kvjson/internal/keys"
)

// Kind distinguishes key presses from key releases.
type Kind int

const (
	Press Kind = iota
	Release
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k == Release {
		return "release"
	}
	return "press"
}

// KeyEvent is a single key notification from the input source.
type KeyEvent struct {
	Kind Kind
	// Key is the logical key name as used by key bindings ("enter", "esc", "a").
	Key string
	// Runes holds the typed characters, empty for named keys.
	Runes []rune
}

// String implements fmt.Stringer so KeyEvent works with key.Matches.
func (e KeyEvent) String() string {
	return e.Key
}

// FromTea converts a Bubble Tea key message. Bubble Tea only reports presses.
// Runes are kept even with Alt held; the key name still carries the "alt+"
// prefix, so browse bindings only match an alt chord when configured to.
func FromTea(msg tea.KeyMsg) KeyEvent {
	ev := KeyEvent{Kind: Press, Key: msg.String()}
	switch msg.Type {
	case tea.KeyRunes:
		ev.Runes = append([]rune(nil), msg.Runes...)
	case tea.KeySpace:
		ev.Runes = []rune{' '}
	}
	return ev
}

// Split converts msg into one KeyEvent per keystroke. Bubble Tea batches
// characters that arrive in the same read into a single KeyRunes message;
// those are split so each one is translated against the mode it lands in.
// Pastes stay whole.
func Split(msg tea.KeyMsg) []KeyEvent {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) < 2 {
		return []KeyEvent{FromTea(msg)}
	}
	events := make([]KeyEvent, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		events = append(events, FromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}))
	}
	return events
}

// Translate maps ev to the editor events it produces in mode. Unbound keys
// produce nothing. A pasted run of characters yields one event per rune.
//
// Releases are only filtered while editing; browsing and the exit prompt
// react to releases as well.
func Translate(mode editor.Mode, ev KeyEvent) []editor.Event {
	switch mode.(type) {
	case editor.Browsing:
		switch {
		case key.Matches(ev, keys.Browse.NewPair):
			return single(editor.EventStartNewPair)
		case key.Matches(ev, keys.Browse.Quit):
			return single(editor.EventRequestExit)
		}

	case editor.Editing:
		if ev.Kind != Press {
			return nil
		}
		switch {
		case key.Matches(ev, keys.Edit.Confirm):
			return single(editor.EventConfirm)
		case key.Matches(ev, keys.Edit.Backspace):
			return single(editor.EventBackspace)
		case key.Matches(ev, keys.Edit.Cancel):
			return single(editor.EventCancel)
		case key.Matches(ev, keys.Edit.Toggle):
			return single(editor.EventToggleFocus)
		}
		events := make([]editor.Event, 0, len(ev.Runes))
		for _, r := range ev.Runes {
			events = append(events, editor.Event{Kind: editor.EventChar, Char: r})
		}
		return events

	case editor.ConfirmingExit:
		switch {
		case key.Matches(ev, keys.Exit.Yes):
			return single(editor.EventYes)
		case key.Matches(ev, keys.Exit.No):
			return single(editor.EventNo)
		}
	}
	return nil
}

func single(kind editor.EventKind) []editor.Event {
	return []editor.Event{{Kind: kind}}
}
