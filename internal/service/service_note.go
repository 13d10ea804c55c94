// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/store"
	"github.com/MKhiriev/thoughts/models"
)

type noteService struct {
	notes store.NoteRepository
	now   func() time.Time

	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		notes:  notes,
		now:    time.Now,
		logger: logger,
	}
}

func (s *noteService) List(ctx context.Context, sess *models.Session) ([]models.Note, error) {
	if sess.UserID() == "" {
		return nil, ErrSessionNotFound
	}

	notes, err := s.notes.GetNotes(ctx, sess.UserID())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteService.List").Msg("listing notes failed")
		return nil, mapReadError(err)
	}
	return notes, nil
}

func (s *noteService) Get(ctx context.Context, sess *models.Session, noteID string) (models.Note, error) {
	if sess.UserID() == "" {
		return models.Note{}, ErrSessionNotFound
	}

	note, err := s.notes.GetNote(ctx, sess.UserID(), noteID)
	if err != nil {
		return models.Note{}, mapReadError(err)
	}
	return note, nil
}

func (s *noteService) Save(ctx context.Context, draft models.NoteDraft) (models.Note, bool, error) {
	log := logger.FromContext(ctx).With().Str("note_id", draft.NoteID).Logger()

	if draft.UserID == "" {
		return models.Note{}, false, ErrSessionNotFound
	}

	// A new note only comes into existence once it has text.
	if draft.IsNew && draft.IsBlank() {
		return models.Note{}, false, nil
	}

	// Stored timestamps have millisecond precision.
	now := time.UnixMilli(s.now().UnixMilli())

	existing, err := s.notes.GetNote(ctx, draft.UserID, draft.NoteID)
	switch {
	case err == nil:
		existing.Content = draft.Content
		if !now.After(existing.UpdatedAt) {
			now = existing.UpdatedAt.Add(time.Millisecond)
		}
		existing.UpdatedAt = now

		if err = s.notes.UpdateNote(ctx, existing); err != nil {
			log.Err(err).Str("func", "noteService.Save").Msg("updating note failed")
			return models.Note{}, false, mapWriteError(err)
		}
		return existing, true, nil

	case errors.Is(err, store.ErrNoteNotFound):
		if draft.IsBlank() {
			return models.Note{}, false, nil
		}

	default:
		log.Err(err).Str("func", "noteService.Save").Msg("note lookup failed")
		return models.Note{}, false, mapWriteError(err)
	}

	note := models.Note{
		NoteID:     draft.NoteID,
		UserID:     draft.UserID,
		NotebookID: draft.NotebookID,
		Content:    draft.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.notes.CreateNote(ctx, note); err != nil {
		log.Err(err).Str("func", "noteService.Save").Msg("creating note failed")
		return models.Note{}, false, mapWriteError(err)
	}

	log.Debug().Msg("note created")
	return note, true, nil
}
