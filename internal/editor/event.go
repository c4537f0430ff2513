package editor

// EventKind enumerates the abstract events the state machine understands.
type EventKind int

const (
	EventNone EventKind = iota
	EventStartNewPair
	EventRequestExit
	EventToggleFocus
	EventConfirm
	EventBackspace
	EventChar
	EventCancel
	EventYes
	EventNo
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStartNewPair:
		return "start-new-pair"
	case EventRequestExit:
		return "request-exit"
	case EventToggleFocus:
		return "tab"
	case EventConfirm:
		return "confirm"
	case EventBackspace:
		return "backspace"
	case EventChar:
		return "char"
	case EventCancel:
		return "escape"
	case EventYes:
		return "yes"
	case EventNo:
		return "no"
	default:
		return "none"
	}
}

// Event is one abstract input. Char is only meaningful for EventChar.
type Event struct {
	Kind EventKind
	Char rune
}

// Outcome reports what Dispatch did with an event.
type Outcome struct {
	// Applied is false when the event was not valid for the mode and was dropped.
	Applied bool
	// Done is true once the session reached its terminal mode.
	Done bool
	// Print is true when the store should be emitted on exit.
	Print bool
}

// Dispatch applies ev according to the current mode. Events that are not
// valid for the mode are dropped without changing anything.
func (s *State) Dispatch(ev Event) Outcome {
	var applied bool
	switch ev.Kind {
	case EventStartNewPair:
		applied = s.BeginNewPair()
	case EventRequestExit:
		applied = s.RequestExit()
	case EventToggleFocus:
		applied = s.ToggleFocus()
	case EventConfirm:
		applied = s.Advance()
	case EventBackspace:
		applied = s.DeleteLastChar()
	case EventChar:
		applied = s.AppendChar(ev.Char)
	case EventCancel:
		applied = s.CancelEditing()
	case EventYes:
		applied = s.ConfirmExit(true)
	case EventNo:
		applied = s.ConfirmExit(false)
	}

	shouldPrint, done := s.Done()
	return Outcome{Applied: applied, Done: done, Print: shouldPrint}
}
