package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/thoughts/internal/autosave"
	"github.com/MKhiriev/thoughts/internal/navigation"
	"github.com/MKhiriev/thoughts/models"
)

// ErrEditorOpen is returned when opening a second editor.
var ErrEditorOpen = errors.New("an editor is already open")

// OpenNote starts an editor session for an existing note. The search overlay
// is closed so a search result lands in the editor. A note that is not in
// the snapshot leaves the view on Home.
func (w *Workspace) OpenNote(noteID string) error {
	if w.sess == nil {
		return ErrNoSession
	}
	if w.editor != nil {
		return ErrEditorOpen
	}

	note, ok := w.Note(noteID)
	if !ok {
		w.logger.Debug().Str("note_id", noteID).Str("func", "Workspace.OpenNote").Msg("note is not loaded, staying home")
		w.nav.NavigateHome()
		return nil
	}

	w.nav.Close(navigation.Search)
	w.nav.OpenNote(note.NoteID, note.NotebookRef())
	w.startEditor(models.NoteDraft{
		NoteID:     note.NoteID,
		NotebookID: note.NotebookID,
		Content:    note.Content,
	})
	return nil
}

// CreateNote opens an editor for a new note with a freshly allocated id,
// filed into the notebook being viewed, if any. Nothing is written until
// the note has text.
func (w *Workspace) CreateNote() error {
	if w.sess == nil {
		return ErrNoSession
	}
	if w.editor != nil {
		return ErrEditorOpen
	}

	e := w.nav.CreateNote()
	w.startEditor(models.NoteDraft{
		NoteID:     w.ids.Generate(),
		NotebookID: models.NotebookPtr(e.NotebookID),
		IsNew:      true,
	})
	return nil
}

func (w *Workspace) startEditor(draft models.NoteDraft) {
	w.editor = autosave.New(w.services.NoteService, w.sess, draft,
		autosave.WithDelay(w.delay),
		autosave.WithLogger(w.logger),
		autosave.WithNotify(w.publish),
	)
}

// publish forwards a status change without blocking the timer goroutine.
// The editor also polls Status, so a dropped event only delays a redraw.
// A save that finishes after Logout is not reported.
func (w *Workspace) publish(ev autosave.Event) {
	w.eventsMu.Lock()
	defer w.eventsMu.Unlock()

	if w.eventsClosed {
		return
	}
	select {
	case w.events <- ev:
	default:
	}
}

// closeEvents releases whoever waits on Events.
func (w *Workspace) closeEvents() {
	w.eventsMu.Lock()
	defer w.eventsMu.Unlock()

	if !w.eventsClosed {
		w.eventsClosed = true
		close(w.events)
	}
}

// Edit records new editor content.
func (w *Workspace) Edit(content string) {
	if w.editor != nil {
		w.editor.OnContentChange(content)
	}
}

// SaveNow writes the editor content immediately. It doubles as the retry
// after a failed save.
func (w *Workspace) SaveNow(ctx context.Context) error {
	if w.editor == nil {
		return navigation.ErrNotInEditor
	}
	return w.editor.Retry(ctx)
}

// CloseEditor ends the editor session. The pending timer is cancelled and
// changed content is saved once. If that save fails the editor stays open
// with its content and the error is returned. Otherwise the view moves to
// the note's notebook or Home, and the snapshot is reloaded.
func (w *Workspace) CloseEditor(ctx context.Context) error {
	if w.editor == nil {
		return navigation.ErrNotInEditor
	}

	if err := w.editor.Close(ctx); err != nil {
		return err
	}
	w.editor = nil

	if _, err := w.nav.CloseEditor(); err != nil {
		return err
	}

	if err := w.Refresh(ctx); err != nil {
		return fmt.Errorf("reloading after save: %w", err)
	}
	return nil
}

// DiscardEditor leaves the editor without saving. Used after a failed save
// when the user chooses to drop the changes.
func (w *Workspace) DiscardEditor() {
	if w.editor == nil {
		return
	}
	w.editor.CancelPending()
	w.editor = nil
	_, _ = w.nav.CloseEditor()
	w.resolve()
}
