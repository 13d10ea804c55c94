// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/thoughts/internal/app"
	"github.com/MKhiriev/thoughts/internal/service"
)

// ErrUserQuit is returned by the auth flow when the user leaves it.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns a service error into a message for the screen.
// Details of unexpected errors stay in the log.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrDuplicateEmail):
		return app.MsgDuplicateEmail
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrInvalidEmail):
		return app.MsgInvalidEmail
	case errors.Is(err, service.ErrWeakPassword):
		return app.MsgWeakPassword
	case errors.Is(err, service.ErrEmptyNotebookName):
		return app.MsgEmptyNotebookName
	case errors.Is(err, service.ErrPersistenceWriteFailed):
		return app.MsgPersistenceWriteFailed
	case errors.Is(err, service.ErrStorageReadFailed):
		return app.MsgLoadFailed
	default:
		return app.MsgUnexpectedError
	}
}
