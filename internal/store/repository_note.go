package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a note under its pre-allocated id.
// Returns [ErrNoteAlreadyExists] if the id is taken.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("user_id", note.UserID).
			Str("note_id", note.NoteID).
			Msg("failed to insert note")
		return r.writeError(err, ErrNoteAlreadyExists)
	}

	log.Debug().
		Str("func", "noteRepository.CreateNote").
		Str("note_id", note.NoteID).
		Int("length", len(note.Content)).
		Msg("note created")
	return nil
}

// UpdateNote rewrites content and updated_at of an existing note.
// Returns [ErrNoteNotFound] if no row matched.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(note)
	if err != nil {
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("user_id", note.UserID).
			Str("note_id", note.NoteID).
			Msg("failed to update note")
		return r.writeError(err, nil)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(userID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	note, err := scanNote(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// GetNotes returns every note of the user, most recently updated first.
func (r *noteRepository) GetNotes(ctx context.Context, userID string) ([]models.Note, error) {
	const fn = "noteRepository.GetNotes"
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("user_id", userID).
			Msg("failed to execute query for getting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Err(err).
				Str("func", fn).
				Str("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", fn).
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note                 models.Note
		notebookID           sql.NullString
		createdAt, updatedAt int64
	)
	if err := row.Scan(&note.NoteID, &note.UserID, &notebookID, &note.Content, &createdAt, &updatedAt); err != nil {
		return models.Note{}, err
	}

	if notebookID.Valid {
		note.NotebookID = models.NotebookPtr(notebookID.String)
	}
	note.CreatedAt = time.UnixMilli(createdAt)
	note.UpdatedAt = time.UnixMilli(updatedAt)

	return note, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
