package editor

// State is the whole editor session: the committed store, the key and value
// drafts, and the current mode. It performs no I/O; every operation either
// applies and reports true, or leaves the state untouched and reports false.
type State struct {
	store      *Store
	keyDraft   []rune
	valueDraft []rune
	mode       Mode
}

// New creates a session with an empty store, empty drafts, in Browsing mode.
func New() *State {
	return &State{
		store: NewStore(),
		mode:  Browsing{},
	}
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Store returns the committed pairs.
func (s *State) Store() *Store {
	return s.store
}

// KeyDraft returns the key being typed.
func (s *State) KeyDraft() string {
	return string(s.keyDraft)
}

// ValueDraft returns the value being typed.
func (s *State) ValueDraft() string {
	return string(s.valueDraft)
}

// Focus returns the focused buffer. ok is false outside Editing.
func (s *State) Focus() (f Focus, ok bool) {
	e, ok := s.mode.(Editing)
	if !ok {
		return 0, false
	}
	return e.Focus, true
}

// Done reports whether the session has reached Exited, and if so whether the
// store should be printed.
func (s *State) Done() (shouldPrint bool, done bool) {
	e, ok := s.mode.(Exited)
	if !ok {
		return false, false
	}
	return e.Print, true
}

// BeginNewPair enters Editing with the key focused. Drafts are left as they
// are; commit and cancel always leave them empty, so nothing stale survives.
func (s *State) BeginNewPair() bool {
	if _, ok := s.mode.(Browsing); !ok {
		return false
	}
	s.mode = Editing{Focus: FocusKey}
	return true
}

// RequestExit moves from Browsing to the exit prompt.
func (s *State) RequestExit() bool {
	if _, ok := s.mode.(Browsing); !ok {
		return false
	}
	s.mode = ConfirmingExit{}
	return true
}

// ConfirmExit answers the exit prompt. Both answers end the session; shouldPrint
// selects whether the store gets emitted. There is no way back to Browsing.
func (s *State) ConfirmExit(shouldPrint bool) bool {
	if _, ok := s.mode.(ConfirmingExit); !ok {
		return false
	}
	s.mode = Exited{Print: shouldPrint}
	return true
}

// ToggleFocus flips between the key and value drafts.
func (s *State) ToggleFocus() bool {
	e, ok := s.mode.(Editing)
	if !ok {
		return false
	}
	s.mode = Editing{Focus: e.Focus.Toggle()}
	return true
}

// Advance moves focus from key to value, or commits the pair when the value
// is focused.
func (s *State) Advance() bool {
	e, ok := s.mode.(Editing)
	if !ok {
		return false
	}
	if e.Focus == FocusKey {
		s.mode = Editing{Focus: FocusValue}
		return true
	}
	s.commit()
	return true
}

// commit stores the drafted pair, overwriting any previous value for the key.
func (s *State) commit() {
	s.store.Set(string(s.keyDraft), string(s.valueDraft))
	s.clearDrafts()
	s.mode = Browsing{}
}

// DeleteLastChar removes the last rune of the focused draft. Deleting from an
// empty draft still counts as handled but changes nothing.
func (s *State) DeleteLastChar() bool {
	buf := s.focused()
	if buf == nil {
		return false
	}
	if n := len(*buf); n > 0 {
		*buf = (*buf)[:n-1]
	}
	return true
}

// AppendChar appends r to the focused draft. No filtering is applied.
func (s *State) AppendChar(r rune) bool {
	buf := s.focused()
	if buf == nil {
		return false
	}
	*buf = append(*buf, r)
	return true
}

// CancelEditing discards both drafts and returns to Browsing. The store is
// not touched.
func (s *State) CancelEditing() bool {
	if _, ok := s.mode.(Editing); !ok {
		return false
	}
	s.clearDrafts()
	s.mode = Browsing{}
	return true
}

func (s *State) clearDrafts() {
	s.keyDraft = nil
	s.valueDraft = nil
}

// focused returns the draft matching the current focus, or nil outside Editing.
func (s *State) focused() *[]rune {
	e, ok := s.mode.(Editing)
	if !ok {
		return nil
	}
	if e.Focus == FocusKey {
		return &s.keyDraft
	}
	return &s.valueDraft
}
