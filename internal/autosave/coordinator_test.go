package autosave

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/thoughts/models"
)

const testDelay = 50 * time.Millisecond

var errDiskFull = errors.New("disk full")

// saverSpy records every draft it receives and follows the note service
// policy: a blank draft that was never written is not persisted.
type saverSpy struct {
	mu     sync.Mutex
	drafts []models.NoteDraft
	err    error
	block  chan struct{}
}

func (s *saverSpy) Save(_ context.Context, draft models.NoteDraft) (models.Note, bool, error) {
	s.mu.Lock()
	s.drafts = append(s.drafts, draft)
	err := s.err
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return models.Note{}, false, err
	}
	if draft.IsNew && strings.TrimSpace(draft.Content) == "" {
		return models.Note{}, false, nil
	}
	return models.Note{NoteID: draft.NoteID, UserID: draft.UserID, Content: draft.Content, UpdatedAt: time.Now()}, true, nil
}

func (s *saverSpy) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *saverSpy) last() models.NoteDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts[len(s.drafts)-1]
}

func (s *saverSpy) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) record(e Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

func (l *eventLog) statuses() []Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Status, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Status)
	}
	return out
}

func testSession() *models.Session {
	return models.NewSession(models.User{UserID: "u-1", Name: "Ann"}, time.Now())
}

func newDraft() models.NoteDraft {
	return models.NoteDraft{NoteID: "n-1", IsNew: true}
}

func existingDraft(content string) models.NoteDraft {
	return models.NoteDraft{NoteID: "n-1", NotebookID: models.NotebookPtr("nb-1"), Content: content}
}

func TestOnContentChange_CollapsesBurst(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), newDraft(), WithDelay(testDelay))

	for _, s := range []string{"H", "He", "Hel", "Hell", "Hello"} {
		c.OnContentChange(s)
		time.Sleep(testDelay / 10)
	}

	require.Eventually(t, func() bool { return spy.calls() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Hello", spy.last().Content)
	assert.Equal(t, "u-1", spy.last().UserID)
	assert.True(t, spy.last().IsNew)

	// nothing else fires later
	time.Sleep(3 * testDelay)
	assert.Equal(t, 1, spy.calls())
	assert.Equal(t, Saved, c.Status())
	assert.False(t, c.IsNew())
	assert.False(t, c.Dirty())
}

func TestOnContentChange_SeparateWindowsSaveTwice(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), newDraft(), WithDelay(testDelay))

	c.OnContentChange("first")
	require.Eventually(t, func() bool { return spy.calls() == 1 }, time.Second, 5*time.Millisecond)

	c.OnContentChange("first and second")
	require.Eventually(t, func() bool { return spy.calls() == 2 }, time.Second, 5*time.Millisecond)

	second := spy.last()
	assert.False(t, second.IsNew, "the second write updates the note created by the first")
	assert.Equal(t, "n-1", second.NoteID)
	assert.Equal(t, "first and second", second.Content)
}

func TestCancelPending(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), existingDraft("old"), WithDelay(testDelay))

	c.OnContentChange("new")
	c.CancelPending()

	time.Sleep(3 * testDelay)
	assert.Equal(t, 0, spy.calls())
	assert.Equal(t, Idle, c.Status())
	assert.Equal(t, "new", c.Content())
	assert.True(t, c.Dirty())
}

func TestClose_FlushesChangedContentSynchronously(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), existingDraft("old"), WithDelay(time.Hour))

	c.OnContentChange("new")
	require.NoError(t, c.Close(context.Background()))

	require.Equal(t, 1, spy.calls())
	assert.Equal(t, "new", spy.last().Content)
	assert.Equal(t, "nb-1", c.NotebookID())

	// closed sessions ignore further edits
	c.OnContentChange("after close")
	assert.Equal(t, "new", c.Content())
	assert.ErrorIs(t, c.Flush(context.Background()), ErrClosed)
}

func TestClose_UnchangedContentDoesNotSave(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), existingDraft("same"), WithDelay(testDelay))

	c.OnContentChange("different")
	c.OnContentChange("same")
	require.NoError(t, c.Close(context.Background()))

	time.Sleep(2 * testDelay)
	assert.Equal(t, 0, spy.calls())
}

func TestClose_AfterDebouncedSaveDoesNotRewrite(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), existingDraft("old"), WithDelay(testDelay))

	c.OnContentChange("new")
	require.Eventually(t, func() bool { return spy.calls() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, spy.calls())
}

func TestClose_RevertAfterSaveWritesBack(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), existingDraft("old"), WithDelay(testDelay))

	c.OnContentChange("new")
	require.Eventually(t, func() bool { return spy.calls() == 1 }, time.Second, 5*time.Millisecond)

	c.OnContentChange("old")
	require.NoError(t, c.Close(context.Background()))

	require.Equal(t, 2, spy.calls())
	assert.Equal(t, "old", spy.last().Content)
}

// TestClose_BlankNewNoteIsNotPersisted covers a new editor session where the
// user typed only whitespace.
func TestClose_BlankNewNoteIsNotPersisted(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), newDraft(), WithDelay(time.Hour))

	c.OnContentChange("  \n\t ")
	require.NoError(t, c.Close(context.Background()))

	require.Equal(t, 1, spy.calls())
	assert.True(t, c.IsNew())
	assert.Equal(t, Idle, c.Status())
}

func TestClose_NeverTouchedNewNote(t *testing.T) {
	spy := &saverSpy{}
	c := New(spy, testSession(), newDraft(), WithDelay(testDelay))

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 0, spy.calls())
}

func TestFlush_FailureKeepsContentAndRetries(t *testing.T) {
	spy := &saverSpy{err: errDiskFull}
	events := &eventLog{}
	c := New(spy, testSession(), existingDraft("old"), WithDelay(time.Hour), WithNotify(events.record))

	c.OnContentChange("precious words")
	err := c.Flush(context.Background())

	require.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, Failed, c.Status())
	assert.ErrorIs(t, c.Err(), errDiskFull)
	assert.Equal(t, "precious words", c.Content())
	assert.True(t, c.Dirty())

	spy.setErr(nil)
	require.NoError(t, c.Retry(context.Background()))

	assert.Equal(t, Saved, c.Status())
	assert.NoError(t, c.Err())
	assert.Equal(t, "precious words", spy.last().Content)
	assert.Equal(t, []Status{Pending, Saving, Failed, Saving, Saved}, events.statuses())
}

func TestClose_FailureKeepsSessionOpen(t *testing.T) {
	spy := &saverSpy{err: errDiskFull}
	c := New(spy, testSession(), existingDraft("old"), WithDelay(time.Hour))

	c.OnContentChange("new")
	err := c.Close(context.Background())
	require.ErrorIs(t, err, errDiskFull)

	// still usable
	c.OnContentChange("newer")
	assert.Equal(t, "newer", c.Content())

	spy.setErr(nil)
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, "newer", spy.last().Content)
}

func TestFlush_EditDuringSaveStaysPending(t *testing.T) {
	spy := &saverSpy{block: make(chan struct{})}
	c := New(spy, testSession(), existingDraft("old"), WithDelay(time.Hour))

	c.OnContentChange("one")
	done := make(chan error, 1)
	go func() { done <- c.Flush(context.Background()) }()

	require.Eventually(t, func() bool { return c.Status() == Saving }, time.Second, time.Millisecond)
	c.OnContentChange("two")
	close(spy.block)

	require.NoError(t, <-done)
	assert.Equal(t, Pending, c.Status())
	assert.True(t, c.Dirty())
	c.CancelPending()
}

func TestWithDelay_IgnoresNonPositive(t *testing.T) {
	c := New(&saverSpy{}, testSession(), newDraft(), WithDelay(0), WithLogger(nil))
	assert.Equal(t, DefaultDelay, c.delay)
	assert.NotNil(t, c.logger)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "saving", Saving.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
