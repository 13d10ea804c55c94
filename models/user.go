package models

import (
	"strings"
	"time"
)

// DefaultUserName is stored when a user registers without a display name.
const DefaultUserName = "Writer"

// User represents a local account.
// PasswordHash holds a one-way hash of the password. Records created before
// hashing was introduced may still hold the plaintext; see the auth service.
type User struct {
	// UserID is the opaque identifier of the user (UUIDv7).
	UserID string `json:"user_id"`

	// Email is unique across all local accounts and compared exactly.
	Email string `json:"email"`

	// PasswordHash must never be shown or logged.
	PasswordHash string `json:"-"`

	// Name is the display name shown in greetings and settings.
	Name string `json:"name"`

	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FirstName returns the first word of the display name, falling back to
// [DefaultUserName] when the name is blank.
func (u User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return DefaultUserName
	}
	return fields[0]
}

// Initial returns the upper-cased first letter of the display name.
func (u User) Initial() string {
	for _, r := range u.FirstName() {
		return strings.ToUpper(string(r))
	}
	return ""
}

// Credentials carries raw registration or login input.
type Credentials struct {
	Email    string
	Password string
	Name     string
}
