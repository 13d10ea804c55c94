package service

import "errors"

// Account errors. They are shown inline next to the form and never retried.
var (
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	// ErrPersistenceWriteFailed means a save did not commit. In-memory
	// content is kept, so the caller can retry without loss.
	ErrPersistenceWriteFailed = errors.New("could not save changes")

	// ErrStorageReadFailed means a lookup could not be completed.
	ErrStorageReadFailed = errors.New("could not read saved data")

	ErrSessionNotFound   = errors.New("no active session")
	ErrEmptyNotebookName = errors.New("notebook name is required")
	ErrNoteNotFound      = errors.New("note not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
