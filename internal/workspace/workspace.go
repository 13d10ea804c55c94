// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workspace holds everything that belongs to one logged-in session:
// the session object, the navigation machine, the loaded notebooks and notes
// and the auto-save coordinator of the open editor.
//
// A Workspace is owned by the UI loop and is not safe for concurrent use.
// The exceptions are Events, which is fed from coordinator timers, and Load,
// which only touches the session it is given.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/thoughts/internal/autosave"
	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/navigation"
	"github.com/MKhiriev/thoughts/internal/search"
	"github.com/MKhiriev/thoughts/internal/service"
	"github.com/MKhiriev/thoughts/internal/utils"
	"github.com/MKhiriev/thoughts/models"
)

// ErrNoSession is returned by operations on a workspace after logout.
var ErrNoSession = errors.New("workspace has no session")

const eventBuffer = 64

// Snapshot is the loaded state of one user: notebooks in creation order and
// notes with the most recently updated first.
type Snapshot struct {
	Notebooks []models.Notebook
	Notes     []models.Note
}

type Workspace struct {
	sess     *models.Session
	services *service.ClientServices
	nav      *navigation.Machine
	snapshot Snapshot
	editor   *autosave.Coordinator
	events   chan autosave.Event

	eventsMu     sync.Mutex
	eventsClosed bool

	ids         utils.IDGenerator
	delay       time.Duration
	recentLimit int
	logger      *logger.Logger
}

// New opens a workspace for sess on the Home screen. Call Refresh (or Load
// and Apply) before rendering.
func New(sess *models.Session, services *service.ClientServices, opts ...Option) *Workspace {
	w := &Workspace{
		sess:        sess,
		services:    services,
		nav:         navigation.New(),
		events:      make(chan autosave.Event, eventBuffer),
		ids:         utils.NewUUIDGenerator(),
		delay:       autosave.DefaultDelay,
		recentLimit: DefaultRecentLimit,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Session returns the session object, or nil after Logout.
func (w *Workspace) Session() *models.Session {
	return w.sess
}

// Nav exposes the navigation machine for overlay toggles and rendering.
func (w *Workspace) Nav() *navigation.Machine {
	return w.nav
}

// Editor returns the coordinator of the open editor, or nil.
func (w *Workspace) Editor() *autosave.Coordinator {
	return w.editor
}

// Events delivers save status changes of every editor session. It is closed
// by Logout.
func (w *Workspace) Events() <-chan autosave.Event {
	return w.events
}

// Load reads the notebooks and notes of sess. It reads no workspace state,
// so it can run off the UI loop; take sess from Session on the loop.
func (w *Workspace) Load(ctx context.Context, sess *models.Session) (Snapshot, error) {
	if sess == nil {
		return Snapshot{}, ErrNoSession
	}

	notebooks, err := w.services.NotebookService.List(ctx, sess)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading notebooks: %w", err)
	}

	notes, err := w.services.NoteService.List(ctx, sess)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading notes: %w", err)
	}

	return Snapshot{Notebooks: notebooks, Notes: notes}, nil
}

// Apply installs a loaded snapshot and re-checks the current view against it.
// A view that points at something that is gone moves Home.
func (w *Workspace) Apply(s Snapshot) {
	w.snapshot = s
	w.resolve()
}

// Refresh is Load followed by Apply.
func (w *Workspace) Refresh(ctx context.Context) error {
	s, err := w.Load(ctx, w.sess)
	if err != nil {
		return err
	}
	w.Apply(s)
	return nil
}

func (w *Workspace) resolve() {
	err := w.nav.Resolve(
		func(id string) bool { _, ok := w.Notebook(id); return ok },
		func(id string) bool { _, ok := w.Note(id); return ok },
	)
	if err == nil {
		return
	}

	w.logger.Debug().Err(err).Str("func", "Workspace.resolve").Msg("view redirected home")
	if w.editor != nil {
		w.editor.CancelPending()
		w.editor = nil
	}
}

// Notebooks returns the loaded notebooks in creation order.
func (w *Workspace) Notebooks() []models.Notebook {
	return w.snapshot.Notebooks
}

func (w *Workspace) Notebook(id string) (models.Notebook, bool) {
	for _, nb := range w.snapshot.Notebooks {
		if nb.NotebookID == id {
			return nb, true
		}
	}
	return models.Notebook{}, false
}

func (w *Workspace) Note(id string) (models.Note, bool) {
	for _, n := range w.snapshot.Notes {
		if n.NoteID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// RecentNotes returns the most recently updated notes, at most the
// configured limit.
func (w *Workspace) RecentNotes() []models.Note {
	notes := w.snapshot.Notes
	if len(notes) > w.recentLimit {
		notes = notes[:w.recentLimit]
	}
	return notes
}

// NotebookNotes returns the notes filed into notebookID, most recently
// updated first.
func (w *Workspace) NotebookNotes(notebookID string) []models.Note {
	result := make([]models.Note, 0)
	for _, n := range w.snapshot.Notes {
		if n.InNotebook(notebookID) {
			result = append(result, n)
		}
	}
	return result
}

func (w *Workspace) NotebookNoteCount(notebookID string) int {
	count := 0
	for _, n := range w.snapshot.Notes {
		if n.InNotebook(notebookID) {
			count++
		}
	}
	return count
}

// Search filters the loaded notes by query.
func (w *Workspace) Search(query string) []models.Note {
	return search.Filter(w.snapshot.Notes, query)
}

// OpenNotebook shows the notes of one notebook. Unknown ids stay Home.
func (w *Workspace) OpenNotebook(notebookID string) {
	if w.editor != nil {
		return
	}
	w.nav.OpenNotebook(notebookID)
	w.resolve()
}

// NavigateHome leaves a notebook for Home. Use CloseEditor to leave the editor.
func (w *Workspace) NavigateHome() {
	if w.editor != nil {
		return
	}
	w.nav.NavigateHome()
}

// CreateNotebook stores a new notebook and closes the notebook modal.
func (w *Workspace) CreateNotebook(ctx context.Context, name string) (models.Notebook, error) {
	if w.sess == nil {
		return models.Notebook{}, ErrNoSession
	}

	nb, err := w.services.NotebookService.Create(ctx, w.sess, name)
	if err != nil {
		return models.Notebook{}, err
	}

	w.snapshot.Notebooks = append(w.snapshot.Notebooks, nb)
	w.nav.Close(navigation.NotebookModal)
	return nb, nil
}

// Logout ends the session. An open editor gets one last save attempt; if it
// fails the content is dropped and the failure logged. Navigation is reset
// and Events is closed even when clearing the session pointer fails.
func (w *Workspace) Logout(ctx context.Context) error {
	if w.sess == nil {
		return ErrNoSession
	}

	if w.editor != nil {
		if err := w.editor.Close(ctx); err != nil {
			w.logger.Warn().Err(err).Str("func", "Workspace.Logout").
				Str("note_id", w.editor.NoteID()).Msg("last save before logout failed")
			w.editor.CancelPending()
		}
		w.editor = nil
	}
	w.closeEvents()

	err := w.services.AuthService.Logout(ctx, w.sess)

	w.nav.Reset()
	w.snapshot = Snapshot{}
	w.sess = nil
	return err
}
