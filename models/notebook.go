// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// Notebook is a named grouping of notes owned by one user.
type Notebook struct {
	NotebookID string    `json:"notebook_id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Notebook model.
func (n Notebook) TableName() string {
	return "notebooks"
}

// ThoughtCountLabel renders a note count as "1 thought" or "N thoughts".
func ThoughtCountLabel(count int) string {
	if count == 1 {
		return "1 thought"
	}
	return strconv.Itoa(count) + " thoughts"
}
