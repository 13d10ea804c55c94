package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/store"
	"github.com/MKhiriev/thoughts/internal/utils"
	"github.com/MKhiriev/thoughts/internal/validators"
	"github.com/MKhiriev/thoughts/models"
)

type notebookService struct {
	notebooks store.NotebookRepository
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewNotebookService(notebooks store.NotebookRepository, validator validators.Validator, logger *logger.Logger) NotebookService {
	return &notebookService{
		notebooks: notebooks,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *notebookService) Create(ctx context.Context, sess *models.Session, name string) (models.Notebook, error) {
	nb := models.Notebook{
		UserID: sess.UserID(),
		Name:   strings.TrimSpace(name),
	}
	if err := s.validator.Validate(ctx, nb); err != nil {
		return models.Notebook{}, mapValidationError(err)
	}

	nb.NotebookID = s.ids.Generate()
	nb.CreatedAt = s.now()

	if err := s.notebooks.CreateNotebook(ctx, nb); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notebookService.Create").Msg("creating notebook failed")
		return models.Notebook{}, mapWriteError(err)
	}

	return nb, nil
}

func (s *notebookService) List(ctx context.Context, sess *models.Session) ([]models.Notebook, error) {
	if sess.UserID() == "" {
		return nil, ErrSessionNotFound
	}

	notebooks, err := s.notebooks.GetNotebooks(ctx, sess.UserID())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notebookService.List").Msg("listing notebooks failed")
		return nil, mapReadError(err)
	}
	return notebooks, nil
}
