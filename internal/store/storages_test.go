package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/thoughts/internal/config"
	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/models"
)

// TestNewClientStorages_RoundTrip runs the repositories against a real
// SQLite file with the embedded migrations applied.
func TestNewClientStorages_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewClientStorages(ctx, config.ClientStorage{
		DB:      config.ClientDB{DSN: filepath.Join(dir, "db", "thoughts.db")},
		Session: config.ClientSession{FilePath: filepath.Join(dir, "session.json")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	now := time.UnixMilli(time.Now().UnixMilli())

	user := models.User{UserID: "u-1", Email: "ann@example.com", PasswordHash: "h", Name: "Ann", CreatedAt: now}
	require.NoError(t, s.UserRepository.CreateUser(ctx, user))
	assert.ErrorIs(t, s.UserRepository.CreateUser(ctx, models.User{UserID: "u-2", Email: "ann@example.com", CreatedAt: now}), ErrEmailAlreadyExists)

	found, err := s.UserRepository.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, found)

	require.NoError(t, s.NotebookRepository.CreateNotebook(ctx, models.Notebook{NotebookID: "nb-1", UserID: "u-1", Name: "Ideas", CreatedAt: now}))

	require.NoError(t, s.NoteRepository.CreateNote(ctx, models.Note{
		NoteID: "n-1", UserID: "u-1", NotebookID: models.NotebookPtr("nb-1"), Content: "filed", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, s.NoteRepository.CreateNote(ctx, models.Note{
		NoteID: "n-2", UserID: "u-1", Content: "loose", CreatedAt: now, UpdatedAt: now.Add(time.Millisecond),
	}))

	notes, err := s.NoteRepository.GetNotes(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n-2", notes[0].NoteID)

	assert.True(t, notes[1].InNotebook("nb-1"))
	assert.Nil(t, notes[0].NotebookID)

	require.NoError(t, s.NoteRepository.UpdateNote(ctx, models.Note{NoteID: "n-1", UserID: "u-1", Content: "edited", UpdatedAt: now.Add(time.Second)}))
	edited, err := s.NoteRepository.GetNote(ctx, "u-1", "n-1")
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Content)
	assert.True(t, edited.InNotebook("nb-1"))

	// other users cannot see or touch the note
	_, err = s.NoteRepository.GetNote(ctx, "u-2", "n-1")
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.ErrorIs(t, s.NoteRepository.UpdateNote(ctx, models.Note{NoteID: "n-1", UserID: "u-2", UpdatedAt: now}), ErrNoteNotFound)

	require.NoError(t, s.SessionStore.Save(ctx, "u-1"))
	userID, err := s.SessionStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}
