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

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation, lookup and the lazy password-hash upgrade
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account.
//
// Error handling:
//   - UNIQUE / PRIMARY KEY violation → [ErrEmailAlreadyExists].
//   - SQLITE_BUSY / SQLITE_LOCKED → wrapped [ErrStorageBusy].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("user_id", user.UserID).Msg("error inserting user")
		return r.db.writeError(err, ErrEmailAlreadyExists)
	}

	return nil
}

// FindUserByEmail returns the account whose email matches exactly.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(email)
	if err != nil {
		return models.User{}, err
	}
	return r.findUser(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID returns the account with the given id.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(userID)
	if err != nil {
		return models.User{}, err
	}
	return r.findUser(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findUser(ctx context.Context, fn, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		user      models.User
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Name, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", fn).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.CreatedAt = time.UnixMilli(createdAt)

	return user, nil
}

// UpdatePasswordHash replaces the stored credential of one user.
// Returns [ErrNothingUpdated] if the user does not exist.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordHashQuery(userID, passwordHash)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Str("user_id", userID).Msg("error updating password hash")
		return r.db.writeError(err, nil)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNothingUpdated
	}

	return nil
}
