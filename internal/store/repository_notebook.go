package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/models"
)

type notebookRepository struct {
	*DB
	logger *logger.Logger
}

func NewNotebookRepository(db *DB, logger *logger.Logger) NotebookRepository {
	logger.Debug().Msg("creating notebook repository")
	return &notebookRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *notebookRepository) CreateNotebook(ctx context.Context, notebook models.Notebook) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNotebookQuery(notebook)
	if err != nil {
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "notebookRepository.CreateNotebook").
			Str("user_id", notebook.UserID).
			Str("notebook_id", notebook.NotebookID).
			Msg("failed to insert notebook")
		return r.writeError(err, ErrNotebookAlreadyExists)
	}

	return nil
}

func (r *notebookRepository) GetNotebooks(ctx context.Context, userID string) ([]models.Notebook, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotebooksQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "notebookRepository.GetNotebooks").
			Str("user_id", userID).
			Msg("failed to execute query for getting notebooks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notebooks := make([]models.Notebook, 0)
	for rows.Next() {
		var (
			nb        models.Notebook
			createdAt int64
		)
		if err := rows.Scan(&nb.NotebookID, &nb.UserID, &nb.Name, &createdAt); err != nil {
			log.Err(err).
				Str("func", "notebookRepository.GetNotebooks").
				Str("user_id", userID).
				Msg("failed to scan notebook row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		nb.CreatedAt = time.UnixMilli(createdAt)
		notebooks = append(notebooks, nb)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "notebookRepository.GetNotebooks").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notebooks, nil
}
