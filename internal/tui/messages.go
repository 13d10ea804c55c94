package tui

import (
	"github.com/MKhiriev/thoughts/internal/autosave"
	"github.com/MKhiriev/thoughts/internal/workspace"
	"github.com/MKhiriev/thoughts/models"
)

// NavigateTo switches the active page of the auth flow. Payload, if set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult finishes the auth flow on success.
type AuthResult struct {
	Session *models.Session
	Err     error
}

// OnboardingDone carries the name entered during onboarding to the
// registration page.
type OnboardingDone struct {
	Name string
}

type snapshotLoadedMsg struct {
	snapshot workspace.Snapshot
	err      error
}

type saveEventMsg struct {
	event autosave.Event
}

type clearStatusMsg struct{}
