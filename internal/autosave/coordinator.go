// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package autosave turns keystroke-level edits of one note into debounced
// writes. A Coordinator lives exactly as long as one editor session.
package autosave

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/models"
)

// ErrClosed is returned by Flush and Retry after a successful Close.
var ErrClosed = errors.New("autosave session is closed")

// NoteSaver applies the flush policy to a draft. The bool result is false
// when nothing was written (a blank note that was never saved).
type NoteSaver interface {
	Save(ctx context.Context, draft models.NoteDraft) (models.Note, bool, error)
}

// Coordinator debounces content changes of one note into saves.
//
// There is a single timer handle. Every edit stops it, bumps the generation
// and schedules a new one, so a callback that fires late for an older
// generation does nothing. Saves are serialized by flushMu.
type Coordinator struct {
	saver  NoteSaver
	delay  time.Duration
	notify func(Event)
	logger *logger.Logger

	mu      sync.Mutex
	draft   models.NoteDraft
	saved   string
	savedAt time.Time
	timer   *time.Timer
	gen     uint64
	status  Status
	err     error
	closed  bool

	flushMu sync.Mutex
}

// New starts an editor session for draft on behalf of sess. draft.NoteID
// must already be allocated; for a new note it is the id the first write
// will use.
func New(saver NoteSaver, sess *models.Session, draft models.NoteDraft, opts ...Option) *Coordinator {
	draft.UserID = sess.UserID()

	c := &Coordinator{
		saver:  saver,
		delay:  DefaultDelay,
		logger: logger.Nop(),
		draft:  draft,
		saved:  draft.Content,
	}
	for _, opt := range opts {
		opt(c)
	}
	if draft.IsNew {
		c.saved = ""
	}

	return c
}

// OnContentChange records content and restarts the debounce window.
// Ignored after Close.
func (c *Coordinator) OnContentChange(content string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.draft.Content = content
	c.stopTimerLocked()
	gen := c.gen
	c.timer = time.AfterFunc(c.delay, func() { c.fire(gen) })
	c.status = Pending
	c.mu.Unlock()

	c.emit(Pending, nil)
}

// fire runs on the timer goroutine.
func (c *Coordinator) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.closed {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	// failures reach the UI through notify and Err
	_ = c.flush(c.logger.WithContext(context.Background()))
}

// Flush cancels the pending timer and writes the current content now.
func (c *Coordinator) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.stopTimerLocked()
	c.mu.Unlock()

	return c.flush(ctx)
}

// Retry repeats a failed save with the content held in memory.
func (c *Coordinator) Retry(ctx context.Context) error {
	return c.Flush(ctx)
}

// CancelPending drops the pending timer without saving.
func (c *Coordinator) CancelPending() {
	c.mu.Lock()
	c.stopTimerLocked()
	if c.status == Pending {
		c.status = Idle
	}
	c.mu.Unlock()
}

// Close ends the session. The pending timer is cancelled and, if the content
// differs from what was last written, one synchronous save is made. If that
// save fails the session stays open so the caller can retry.
func (c *Coordinator) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.stopTimerLocked()
	changed := c.draft.Content != c.saved || c.status == Failed
	c.mu.Unlock()

	if changed {
		if err := c.flush(ctx); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func (c *Coordinator) flush(ctx context.Context) error {
	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	c.mu.Lock()
	draft := c.draft
	if !draft.IsNew && draft.Content == c.saved && c.status != Failed {
		if c.timer == nil && c.status == Pending {
			c.status = Saved
		}
		c.mu.Unlock()
		return nil
	}
	c.status = Saving
	c.mu.Unlock()
	c.emit(Saving, nil)

	note, persisted, err := c.saver.Save(ctx, draft)

	c.mu.Lock()
	if err != nil {
		c.status = Failed
		c.err = fmt.Errorf("saving note %s: %w", draft.NoteID, err)
		err = c.err
		c.mu.Unlock()

		logger.FromContext(ctx).Err(err).
			Str("func", "Coordinator.flush").
			Str("note_id", draft.NoteID).
			Int("length", len(draft.Content)).
			Msg("note was not saved")
		c.emit(Failed, err)
		return err
	}

	c.err = nil
	status := Idle
	if persisted {
		c.draft.IsNew = false
		c.saved = draft.Content
		c.savedAt = note.UpdatedAt
		status = Saved
	}
	if c.timer != nil {
		// edited again while saving
		status = Pending
	}
	c.status = status
	c.mu.Unlock()

	c.emit(status, nil)
	return nil
}

// stopTimerLocked cancels the pending timer and invalidates any callback
// already in flight. c.mu must be held.
func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Coordinator) emit(status Status, err error) {
	if c.notify == nil {
		return
	}
	c.notify(Event{NoteID: c.NoteID(), Status: status, Err: err, At: time.Now()})
}

// Content returns the latest content, saved or not.
func (c *Coordinator) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Content
}

func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err returns the error of the last failed save, or nil.
func (c *Coordinator) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Dirty reports whether the content differs from what was last written.
func (c *Coordinator) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Content != c.saved
}

// IsNew reports whether the note has never been written.
func (c *Coordinator) IsNew() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.IsNew
}

// SavedAt returns the updated-at time of the last successful write.
func (c *Coordinator) SavedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.savedAt
}

func (c *Coordinator) NoteID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.NoteID
}

// NotebookID returns the notebook the note is filed into, or "".
func (c *Coordinator) NotebookID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft.NotebookID == nil {
		return ""
	}
	return *c.draft.NotebookID
}
