package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/models"
)

func newTestNotebookRepo(t *testing.T) (*notebookRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &notebookRepository{DB: db, logger: logger.Nop()}, mock
}

func TestCreateNotebook(t *testing.T) {
	created := time.UnixMilli(1_700_000_000_000)
	nb := models.Notebook{NotebookID: "nb-1", UserID: "u-1", Name: "Ideas", CreatedAt: created}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestNotebookRepo(t)
		mock.ExpectExec("INSERT INTO notebooks").
			WithArgs("nb-1", "u-1", "Ideas", created.UnixMilli()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateNotebook(context.Background(), nb))
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo, mock := newTestNotebookRepo(t)
		mock.ExpectExec("INSERT INTO notebooks").
			WillReturnError(sqliteConstraintError(sqlite3.ErrConstraintPrimaryKey))

		assert.ErrorIs(t, repo.CreateNotebook(context.Background(), nb), ErrNotebookAlreadyExists)
	})
}

func TestGetNotebooks(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		repo, mock := newTestNotebookRepo(t)
		rows := sqlmock.NewRows(notebookColumns).
			AddRow("nb-1", "u-1", "Ideas", int64(1_000)).
			AddRow("nb-2", "u-1", "Journal", int64(2_000))
		mock.ExpectQuery("SELECT (.+) FROM notebooks WHERE user_id = ?").
			WithArgs("u-1").
			WillReturnRows(rows)

		notebooks, err := repo.GetNotebooks(context.Background(), "u-1")
		require.NoError(t, err)
		require.Len(t, notebooks, 2)
		assert.Equal(t, "Ideas", notebooks[0].Name)
		assert.Equal(t, "Journal", notebooks[1].Name)
		assert.Equal(t, int64(2_000), notebooks[1].CreatedAt.UnixMilli())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestNotebookRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM notebooks").WillReturnError(errors.New("boom"))

		_, err := repo.GetNotebooks(context.Background(), "u-1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestNotebookRepo(t)
		rows := sqlmock.NewRows(notebookColumns).AddRow("nb-1", "u-1", "Ideas", "not-a-number")
		mock.ExpectQuery("SELECT (.+) FROM notebooks").WillReturnRows(rows)

		_, err := repo.GetNotebooks(context.Background(), "u-1")
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}
