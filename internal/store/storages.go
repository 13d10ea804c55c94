package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/thoughts/internal/config"
	"github.com/MKhiriev/thoughts/internal/logger"
)

// Storages groups every repository of the persistence gateway into a single
// value that can be passed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	NotebookRepository NotebookRepository
	NoteRepository     NoteRepository
	SessionStore       SessionStore

	db *DB
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories and the file-backed session store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		NotebookRepository: NewNotebookRepository(db, logger),
		NoteRepository:     NewNoteRepository(db, logger),
		SessionStore:       NewFileSessionStore(cfg.Session.FilePath, logger),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
