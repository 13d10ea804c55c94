package service

import (
	"context"

	"github.com/MKhiriev/thoughts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the session gate: it registers and authenticates local
// accounts and keeps the durable session pointer in step with the session
// object handed to the rest of the application.
type AuthService interface {
	// Register validates the input (email format, then password length, then
	// uniqueness), stores the account with a hashed password and establishes
	// a session. A blank name is stored as models.DefaultUserName.
	Register(ctx context.Context, creds models.Credentials) (*models.Session, error)

	// Login checks the password against the stored hash. A record whose
	// stored value equals the plaintext password is accepted once and
	// rewritten with a proper hash.
	Login(ctx context.Context, email, password string) (*models.Session, error)

	// RestoreSession resumes the session saved by a previous run. A pointer
	// to a user that no longer exists is cleared. Returns ErrSessionNotFound
	// when there is nothing to restore.
	RestoreSession(ctx context.Context) (*models.Session, error)

	// Logout clears the durable session pointer.
	Logout(ctx context.Context, sess *models.Session) error
}

// NotebookService manages the notebooks of the session's user.
type NotebookService interface {
	// Create trims name and stores a new notebook. Blank names are rejected
	// with ErrEmptyNotebookName.
	Create(ctx context.Context, sess *models.Session, name string) (models.Notebook, error)

	// List returns the user's notebooks in creation order.
	List(ctx context.Context, sess *models.Session) ([]models.Notebook, error)
}

// NoteService manages the notes of the session's user.
type NoteService interface {
	// List returns every note of the user, most recently updated first.
	List(ctx context.Context, sess *models.Session) ([]models.Note, error)

	// Get returns one note or ErrNoteNotFound.
	Get(ctx context.Context, sess *models.Session, noteID string) (models.Note, error)

	// Save applies the flush policy to draft:
	//   - a blank draft of a note that was never written is not persisted;
	//   - an existing note gets the new content and a later updatedAt;
	//   - otherwise the note is created under draft.NoteID.
	// The bool result reports whether anything was written. Write failures
	// wrap ErrPersistenceWriteFailed.
	Save(ctx context.Context, draft models.NoteDraft) (models.Note, bool, error)
}

// AppInfoService exposes build metadata to the settings screen.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
