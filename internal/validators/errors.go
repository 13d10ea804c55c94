package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail      = errors.New("invalid email")
	ErrWeakPassword      = errors.New("password is too short")
	ErrEmptyNotebookName = errors.New("notebook name is required")
	ErrInvalidUserID     = errors.New("invalid user ID")
)
