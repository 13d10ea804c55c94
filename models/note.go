// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

const (
	// PreviewLength is the number of characters shown in note previews.
	PreviewLength = 100

	// EmptyPreview is shown for notes holding only whitespace.
	EmptyPreview = "Empty thought..."

	// DateLayout is the display layout for note timestamps.
	DateLayout = "Jan 2, 3:04 PM"
)

// Note is a single freeform text entry, optionally filed into a notebook.
// A nil NotebookID means the note is unfiled.
type Note struct {
	NoteID     string    `json:"note_id"`
	UserID     string    `json:"user_id"`
	NotebookID *string   `json:"notebook_id,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// InNotebook reports whether the note is filed into the given notebook.
func (n Note) InNotebook(notebookID string) bool {
	return n.NotebookID != nil && *n.NotebookID == notebookID
}

// NotebookRef returns the notebook id or "" for unfiled notes.
func (n Note) NotebookRef() string {
	if n.NotebookID == nil {
		return ""
	}
	return *n.NotebookID
}

// Preview returns a single-line excerpt of at most [PreviewLength] characters.
// Truncation is display-only; Content is never modified.
func (n Note) Preview() string {
	text := strings.Join(strings.Fields(n.Content), " ")
	if text == "" {
		return EmptyPreview
	}

	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return string(runes[:PreviewLength]) + "..."
}

// FormattedDate renders UpdatedAt in local time for list rows.
func (n Note) FormattedDate() string {
	return n.UpdatedAt.Local().Format(DateLayout)
}

// NoteDraft is what an editor session hands to the persistence layer on flush.
// NoteID is allocated when the editor opens, before any content exists.
type NoteDraft struct {
	NoteID     string
	UserID     string
	NotebookID *string
	Content    string

	// IsNew is true until the note has been written at least once.
	IsNew bool
}

// IsBlank reports whether the draft content is empty after trimming.
func (d NoteDraft) IsBlank() bool {
	return strings.TrimSpace(d.Content) == ""
}

// NotebookPtr converts an optional notebook id into the nullable form used
// by [Note] and [NoteDraft].
func NotebookPtr(notebookID string) *string {
	if notebookID == "" {
		return nil
	}
	id := notebookID
	return &id
}
