package navigation

import "errors"

var (
	// ErrStaleReference means the current view points at a notebook or note
	// that is not in the loaded snapshot. The machine has already moved Home.
	ErrStaleReference = errors.New("stale navigation reference")

	// ErrNotInEditor is returned by CloseEditor outside the editor.
	ErrNotInEditor = errors.New("editor is not open")
)

// Machine is the navigation state of one logged-in session.
// It is not safe for concurrent use; the UI loop owns it.
type Machine struct {
	current  View
	overlays Overlay
}

// New returns a machine on the Home screen with no overlays.
func New() *Machine {
	return &Machine{current: Home{}}
}

func (m *Machine) Current() View {
	return m.current
}

// OpenNotebook shows the notes of one notebook.
func (m *Machine) OpenNotebook(notebookID string) {
	m.current = NotebookDetail{NotebookID: notebookID}
}

// OpenNote edits an existing note from any screen.
func (m *Machine) OpenNote(noteID, notebookID string) {
	m.current = Editor{NoteID: noteID, NotebookID: notebookID}
}

// CreateNote opens an editor for a new note, filed into the notebook being
// viewed, if any.
func (m *Machine) CreateNote() Editor {
	var notebookID string
	if nd, ok := m.current.(NotebookDetail); ok {
		notebookID = nd.NotebookID
	}

	e := Editor{NotebookID: notebookID, IsNew: true}
	m.current = e
	return e
}

// CloseEditor leaves the editor for the notebook it belongs to, or Home.
// Pending edits must be flushed before calling it.
func (m *Machine) CloseEditor() (View, error) {
	e, ok := m.current.(Editor)
	if !ok {
		return m.current, ErrNotInEditor
	}

	if e.NotebookID != "" {
		m.current = NotebookDetail{NotebookID: e.NotebookID}
	} else {
		m.current = Home{}
	}
	return m.current, nil
}

// NavigateHome shows Home. Overlays stay as they are.
func (m *Machine) NavigateHome() {
	m.current = Home{}
}

func (m *Machine) Open(o Overlay) {
	m.overlays |= o
}

func (m *Machine) Close(o Overlay) {
	m.overlays &^= o
}

func (m *Machine) Toggle(o Overlay) {
	m.overlays ^= o
}

// IsOpen reports whether every overlay in o is open.
func (m *Machine) IsOpen(o Overlay) bool {
	return o != 0 && m.overlays&o == o
}

// Overlays returns the set of open overlays.
func (m *Machine) Overlays() Overlay {
	return m.overlays
}

// ActiveTab picks the highlighted tab: search, then settings, then home for
// the Home and NotebookDetail views, then editor.
func (m *Machine) ActiveTab() Tab {
	switch {
	case m.IsOpen(Search):
		return TabSearch
	case m.IsOpen(Settings):
		return TabSettings
	}

	if _, ok := m.current.(Editor); ok {
		return TabEditor
	}
	return TabHome
}

// Reset returns to Home and closes every overlay. Used on logout.
func (m *Machine) Reset() {
	m.current = Home{}
	m.overlays = 0
}

// Resolve checks the current view against the loaded snapshot. If it refers
// to a notebook or note that no longer exists, the machine moves Home and
// ErrStaleReference is returned. A new note is not looked up because it
// may not have been written yet.
func (m *Machine) Resolve(notebookExists, noteExists func(id string) bool) error {
	stale := false

	switch v := m.current.(type) {
	case NotebookDetail:
		stale = !notebookExists(v.NotebookID)
	case Editor:
		if v.NotebookID != "" && !notebookExists(v.NotebookID) {
			stale = true
		}
		if !v.IsNew && v.NoteID != "" && !noteExists(v.NoteID) {
			stale = true
		}
	}

	if stale {
		m.current = Home{}
		return ErrStaleReference
	}
	return nil
}
