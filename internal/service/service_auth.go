// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/thoughts/internal/crypto"
	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/store"
	"github.com/MKhiriev/thoughts/internal/utils"
	"github.com/MKhiriev/thoughts/internal/validators"
	"github.com/MKhiriev/thoughts/models"
)

type authService struct {
	users     store.UserRepository
	sessions  store.SessionStore
	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewAuthService builds an [AuthService] over the user repository and the
// session pointer store.
func NewAuthService(
	users store.UserRepository,
	sessions store.SessionStore,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:     users,
		sessions:  sessions,
		hasher:    hasher,
		validator: validator,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *authService) Register(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	log := logger.FromContext(ctx)

	creds.Email = strings.TrimSpace(creds.Email)
	if err := s.validator.Validate(ctx, creds, validators.FieldEmail, validators.FieldPassword); err != nil {
		return nil, mapValidationError(err)
	}

	_, err := s.users.FindUserByEmail(ctx, creds.Email)
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "authService.Register").Msg("user lookup failed")
		return nil, mapReadError(err)
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return nil, ErrWeakPassword
		}
		log.Err(err).Str("func", "authService.Register").Msg("hashing password failed")
		return nil, mapWriteError(err)
	}

	name := strings.TrimSpace(creds.Name)
	if name == "" {
		name = models.DefaultUserName
	}

	user := models.User{
		UserID:       s.ids.Generate(),
		Email:        creds.Email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    s.now(),
	}
	if err = s.users.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("creating user failed")
		return nil, mapWriteError(err)
	}

	return s.startSession(ctx, user), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user lookup failed")
		return nil, mapReadError(err)
	}

	switch {
	case s.hasher.Verify(user.PasswordHash, password):
	case password != "" && user.PasswordHash == password && !s.hasher.IsHash(user.PasswordHash):
		s.upgradeLegacyPassword(ctx, &user, password)
	default:
		return nil, ErrInvalidCredentials
	}

	return s.startSession(ctx, user), nil
}

// upgradeLegacyPassword replaces a plaintext password record with a hash.
// Failure is logged and does not block the login; the next login retries.
func (s *authService) upgradeLegacyPassword(ctx context.Context, user *models.User, password string) {
	log := logger.FromContext(ctx)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.upgradeLegacyPassword").Msg("hashing legacy password failed")
		return
	}

	if err = s.users.UpdatePasswordHash(ctx, user.UserID, hash); err != nil {
		log.Warn().Err(err).Str("func", "authService.upgradeLegacyPassword").Msg("storing migrated hash failed")
		return
	}

	user.PasswordHash = hash
	log.Info().Str("user_id", user.UserID).Msg("legacy password migrated to hash")
}

func (s *authService) RestoreSession(ctx context.Context) (*models.Session, error) {
	log := logger.FromContext(ctx)

	userID, err := s.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Warn().Err(err).Str("func", "authService.RestoreSession").Msg("reading session pointer failed")
		}
		return nil, ErrSessionNotFound
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("user_id", userID).Msg("session pointer refers to a missing user, clearing")
			if clearErr := s.sessions.Clear(ctx); clearErr != nil {
				log.Warn().Err(clearErr).Str("func", "authService.RestoreSession").Msg("clearing session pointer failed")
			}
			return nil, ErrSessionNotFound
		}
		return nil, mapReadError(err)
	}

	return models.NewSession(user, s.now()), nil
}

func (s *authService) Logout(ctx context.Context, sess *models.Session) error {
	if err := s.sessions.Clear(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.Logout").
			Str("user_id", sess.UserID()).Msg("clearing session pointer failed")
		return mapWriteError(err)
	}
	return nil
}

// startSession writes the session pointer and returns the new session. The
// session is usable even if the pointer could not be written; it just will
// not survive a restart.
func (s *authService) startSession(ctx context.Context, user models.User) *models.Session {
	if err := s.sessions.Save(ctx, user.UserID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "authService.startSession").
			Msg("saving session pointer failed")
	}
	return models.NewSession(user, s.now())
}
