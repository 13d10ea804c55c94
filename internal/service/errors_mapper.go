// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/thoughts/internal/crypto"
	"github.com/MKhiriev/thoughts/internal/store"
	"github.com/MKhiriev/thoughts/internal/validators"
)

// mapValidationError translates a validator sentinel into a service error.
func mapValidationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrInvalidEmail):
		return ErrInvalidEmail
	case errors.Is(err, validators.ErrWeakPassword), errors.Is(err, crypto.ErrPasswordTooLong):
		return ErrWeakPassword
	case errors.Is(err, validators.ErrEmptyNotebookName):
		return ErrEmptyNotebookName
	case errors.Is(err, validators.ErrInvalidUserID):
		return ErrSessionNotFound
	default:
		return fmt.Errorf("validation: %w", err)
	}
}

// mapWriteError translates a failed store write. Conflicts on the email
// column become ErrDuplicateEmail; everything else is a retryable
// ErrPersistenceWriteFailed that keeps the store error in the chain.
func mapWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrDuplicateEmail
	case errors.Is(err, store.ErrNoteNotFound):
		return fmt.Errorf("%w: %w", ErrPersistenceWriteFailed, ErrNoteNotFound)
	default:
		return fmt.Errorf("%w: %w", ErrPersistenceWriteFailed, err)
	}
}

// mapReadError translates a failed store lookup.
func mapReadError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoteNotFound):
		return ErrNoteNotFound
	case errors.Is(err, store.ErrSessionNotFound):
		return ErrSessionNotFound
	default:
		return fmt.Errorf("%w: %w", ErrStorageReadFailed, err)
	}
}
