package models

import "time"

// Session is the explicit logged-in context. It is created on login or
// registration, restored from the session pointer on start-up, and
// discarded on logout. Components receive it by pointer instead of
// reading a process-wide variable.
type Session struct {
	User      User
	StartedAt time.Time
}

// NewSession starts a session for user.
func NewSession(user User, now time.Time) *Session {
	return &Session{User: user, StartedAt: now}
}

// UserID returns the owning user's identifier, or "" for a nil session.
func (s *Session) UserID() string {
	if s == nil {
		return ""
	}
	return s.User.UserID
}
