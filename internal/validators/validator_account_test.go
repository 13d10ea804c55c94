// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/thoughts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestNewAccountValidator
// ---------------------------------------------------------------------------

func TestNewAccountValidator(t *testing.T) {
	v := NewAccountValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	creds := models.Credentials{Email: "ann@example.com", Password: "longenough"}
	nb := models.Notebook{UserID: "u-1", Name: "Ideas"}

	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))
	assert.NoError(t, v.Validate(ctx, nb))
	assert.NoError(t, v.Validate(ctx, &nb))
	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, creds, "nickname"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "ann@example.com", valid: true},
		{email: "first.last+tag@sub.example.io", valid: true},
		{email: "UPPER_case%1@Example.ORG", valid: true},
		{email: "", valid: false},
		{email: "no-at-sign.com", valid: false},
		{email: "ann@example", valid: false},
		{email: "ann@example.c", valid: false},
		{email: "ann @example.com", valid: false},
		{email: " ann@example.com", valid: false},
		{email: "ann@exa_mple.com", valid: false},
	}

	v := NewAccountValidator()
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := v.Validate(context.Background(), models.Credentials{Email: tt.email}, FieldEmail)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			}
		})
	}
}

func TestValidate_Password(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "seven chars", password: "1234567", wantErr: ErrWeakPassword},
		{name: "eight chars", password: "12345678"},
		{name: "empty", password: "", wantErr: ErrWeakPassword},
		{name: "multibyte counted as characters", password: "пароль12"},
	}

	v := NewAccountValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.Credentials{Password: tt.password}, FieldPassword)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestValidate_CredentialsOrder verifies that an invalid email is reported
// before a short password.
func TestValidate_CredentialsOrder(t *testing.T) {
	v := NewAccountValidator()
	err := v.Validate(context.Background(), models.Credentials{Email: "bad", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

// ---------------------------------------------------------------------------
// Notebook
// ---------------------------------------------------------------------------

func TestValidate_Notebook(t *testing.T) {
	tests := []struct {
		name    string
		nb      models.Notebook
		wantErr error
	}{
		{name: "valid", nb: models.Notebook{UserID: "u-1", Name: "Ideas"}},
		{name: "blank name", nb: models.Notebook{UserID: "u-1", Name: "  \t"}, wantErr: ErrEmptyNotebookName},
		{name: "empty name", nb: models.Notebook{UserID: "u-1"}, wantErr: ErrEmptyNotebookName},
		{name: "no owner", nb: models.Notebook{Name: "Ideas"}, wantErr: ErrInvalidUserID},
	}

	v := NewAccountValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.nb)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
