package store

import (
	"context"

	"github.com/MKhiriev/thoughts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists local accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
}

// NotebookRepository persists notebooks.
type NotebookRepository interface {
	CreateNotebook(ctx context.Context, notebook models.Notebook) error
	GetNotebooks(ctx context.Context, userID string) ([]models.Notebook, error)
}

// NoteRepository persists notes. Every lookup and update is scoped by the
// owning user id.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) error
	UpdateNote(ctx context.Context, note models.Note) error
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	GetNotes(ctx context.Context, userID string) ([]models.Note, error)
}

// SessionStore holds the durable session pointer: the id of the user who is
// logged in, surviving restarts.
type SessionStore interface {
	Save(ctx context.Context, userID string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
