package store

import (
	"context"
	"database/sql"
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

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func sqliteConstraintError(ext sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: ext}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	created := time.UnixMilli(1_700_000_000_000)
	user := models.User{UserID: "u-1", Email: "ann@example.com", PasswordHash: "hash", Name: "Ann", CreatedAt: created}

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u-1", "ann@example.com", "hash", "Ann", created.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateUser(context.Background(), user))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unique email", dbErr: sqliteConstraintError(sqlite3.ErrConstraintUnique), wantErr: ErrEmailAlreadyExists},
		{name: "primary key", dbErr: sqliteConstraintError(sqlite3.ErrConstraintPrimaryKey), wantErr: ErrEmailAlreadyExists},
		{name: "busy", dbErr: sqlite3.Error{Code: sqlite3.ErrBusy}, wantErr: ErrStorageBusy},
		{name: "other", dbErr: errors.New("disk I/O error"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.dbErr)

			err := repo.CreateUser(context.Background(), models.User{UserID: "u-1"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	created := time.UnixMilli(1_700_000_000_000)

	rows := sqlmock.NewRows(userColumns).
		AddRow("u-1", "ann@example.com", "hash", "Ann Lee", created.UnixMilli())
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
		WithArgs("ann@example.com").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
	assert.Equal(t, "Ann Lee", user.Name)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.True(t, created.Equal(user.CreatedAt))
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_EmptyResult(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = ?").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u-1")) // intentionally wrong shape

	_, err := repo.FindUserByID(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestUpdatePasswordHash(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users SET password_hash = ?").
			WithArgs("new-hash", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdatePasswordHash(context.Background(), "u-1", "new-hash"))
	})

	t.Run("no such user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePasswordHash(context.Background(), "ghost", "new-hash")
		assert.ErrorIs(t, err, ErrNothingUpdated)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users").WillReturnError(errors.New("boom"))

		err := repo.UpdatePasswordHash(context.Background(), "u-1", "new-hash")
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}
