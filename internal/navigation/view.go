// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package navigation holds which screen the application shows: one base view
// out of Home, NotebookDetail and Editor, plus independent overlay flags.
//
// The package does not check that referenced notebooks or notes exist.
// Callers run [Machine.Resolve] against their snapshot before rendering.
package navigation

// View is the base screen. It is a closed set: Home, NotebookDetail, Editor.
type View interface {
	isView()
}

// Home is the landing screen with notebooks and recent notes.
type Home struct{}

// NotebookDetail lists the notes of one notebook.
type NotebookDetail struct {
	NotebookID string
}

// Editor edits one note. NoteID is empty for a note that has not been
// written yet; NotebookID is empty for unfiled notes.
type Editor struct {
	NoteID     string
	NotebookID string
	IsNew      bool
}

func (Home) isView()           {}
func (NotebookDetail) isView() {}
func (Editor) isView()         {}

// Overlay is a set of modal layers rendered above the base view.
type Overlay uint8

const (
	NotebookModal Overlay = 1 << iota
	Settings
	Search
)

func (o Overlay) String() string {
	switch o {
	case NotebookModal:
		return "notebook-modal"
	case Settings:
		return "settings"
	case Search:
		return "search"
	default:
		return "overlays"
	}
}

// Tab is the bottom-bar entry highlighted for the current state.
type Tab int

const (
	TabHome Tab = iota
	TabEditor
	TabSettings
	TabSearch
)

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "home"
	case TabEditor:
		return "write"
	case TabSettings:
		return "settings"
	case TabSearch:
		return "search"
	default:
		return "unknown"
	}
}
