// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// BrowseKeyMap holds the bindings active while browsing the store.
type BrowseKeyMap struct {
	NewPair key.Binding
	Quit    key.Binding
}

// EditKeyMap holds the bindings active while typing a pair. Any printable key
// not bound here is typed into the focused draft.
type EditKeyMap struct {
	Cancel    key.Binding
	Toggle    key.Binding
	Confirm   key.Binding
	Backspace key.Binding
}

// ExitKeyMap holds the answers to the exit prompt.
type ExitKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

// Default key strings for the configurable browse bindings.
const (
	DefaultNewPair = "e"
	DefaultQuit    = "q"
)

// Browse, Edit and Exit are the active keymaps. They are package state so
// ApplyConfig can rebind them once at startup.
var (
	Browse = DefaultBrowseKeyMap()
	Edit   = DefaultEditKeyMap()
	Exit   = DefaultExitKeyMap()
)

// DefaultBrowseKeyMap returns the default browse bindings.
func DefaultBrowseKeyMap() BrowseKeyMap {
	return BrowseKeyMap{
		NewPair: newPairBinding(DefaultNewPair),
		Quit:    quitBinding(DefaultQuit),
	}
}

// DefaultEditKeyMap returns the default edit bindings.
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "complete"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
	}
}

// DefaultExitKeyMap returns the exit prompt bindings.
func DefaultExitKeyMap() ExitKeyMap {
	return ExitKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "print"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "discard"),
		),
	}
}

func newPairBinding(k string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k),
		key.WithHelp(k, "new pair"),
	)
}

func quitBinding(k string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k),
		key.WithHelp(k, "quit"),
	)
}

// ShortHelp returns keybindings for the short help view.
func (k BrowseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.NewPair}
}

// FullHelp returns keybindings for the full help view.
func (k BrowseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ShortHelp returns keybindings for the short help view.
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Toggle, k.Confirm}
}

// FullHelp returns keybindings for the full help view.
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Backspace}}
}

// ShortHelp returns keybindings for the short help view.
func (k ExitKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

// FullHelp returns keybindings for the full help view.
func (k ExitKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ApplyConfig rebinds the browse keys. Empty strings keep the defaults.
// Keys must already be validated by config.ValidateKeybindings.
func ApplyConfig(newPair, quit string) {
	if newPair != "" {
		Browse.NewPair = newPairBinding(newPair)
	}
	if quit != "" {
		Browse.Quit = quitBinding(quit)
	}
}

// ResetForTesting restores every keymap to its defaults.
func ResetForTesting() {
	Browse = DefaultBrowseKeyMap()
	Edit = DefaultEditKeyMap()
	Exit = DefaultExitKeyMap()
}
