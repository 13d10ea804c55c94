package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/thoughts/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldNotebookName = "notebook_name"
	FieldUserID       = "user_id"
)

// MinPasswordLength is the shortest password accepted on registration.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// AccountValidator checks registration input and notebook names.
// Values are validated as given; callers trim before validating.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Notebook:
		return v.validateNotebook(ctx, value, fields...)
	case *models.Notebook:
		return v.validateNotebook(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks fields in the order given. The default order is
// email first, then password.
func (v *AccountValidator) validateCredentials(ctx context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(c.Password) < MinPasswordLength {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateNotebook(ctx context.Context, nb models.Notebook, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNotebookName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if nb.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldNotebookName:
			if strings.TrimSpace(nb.Name) == "" {
				return ErrEmptyNotebookName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
