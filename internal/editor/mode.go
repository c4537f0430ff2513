// Package editor holds the key-value editor state machine: the store being
// built, the two draft buffers, and the current interaction mode.
package editor

// Focus identifies which draft buffer receives input while editing.
type Focus int

const (
	// FocusKey routes input to the key draft.
	FocusKey Focus = iota
	// FocusValue routes input to the value draft.
	FocusValue
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusKey:
		return "key"
	case FocusValue:
		return "value"
	default:
		return "unknown"
	}
}

// Toggle returns the other focus.
func (f Focus) Toggle() Focus {
	if f == FocusKey {
		return FocusValue
	}
	return FocusKey
}

// Mode is the coarse interaction state. It is a closed set of variants:
// Browsing, Editing, ConfirmingExit and Exited. Only Editing carries a Focus.
type Mode interface {
	isMode()
	String() string
}

// Browsing is the idle mode where the store listing is shown.
type Browsing struct{}

// Editing is the mode where a new pair is being typed.
type Editing struct {
	Focus Focus
}

// ConfirmingExit asks whether the store should be printed before exiting.
type ConfirmingExit struct{}

// Exited is terminal. Print reports whether the store should be emitted.
type Exited struct {
	Print bool
}

func (Browsing) isMode()       {}
func (Editing) isMode()        {}
func (ConfirmingExit) isMode() {}
func (Exited) isMode()         {}

func (Browsing) String() string       { return "browsing" }
func (e Editing) String() string      { return "editing(" + e.Focus.String() + ")" }
func (ConfirmingExit) String() string { return "confirming-exit" }

func (e Exited) String() string {
	if e.Print {
		return "exited(print)"
	}
	return "exited"
}
