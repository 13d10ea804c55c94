package autosave

import "time"

// Status is the save state shown by the editor.
type Status int

const (
	// Idle means nothing is pending and nothing has been written yet.
	Idle Status = iota
	// Pending means an edit is waiting for the debounce window to close.
	Pending
	// Saving means a write is in progress.
	Saving
	// Saved means the last write committed.
	Saved
	// Failed means the last write did not commit. Content is kept for retry.
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Saving:
		return "saving"
	case Saved:
		return "saved"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event reports a status change of one coordinator. Err is set for Failed.
type Event struct {
	NoteID string
	Status Status
	Err    error
	At     time.Time
}
