// Package search filters the in-memory note snapshot by content.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/MKhiriev/thoughts/models"
)

// Filter returns the notes whose content contains query, ignoring case, in
// input order. An empty query matches nothing.
func Filter(notes []models.Note, query string) []models.Note {
	result := make([]models.Note, 0)
	if query == "" {
		return result
	}

	folder := cases.Fold()
	needle := folder.String(query)
	for _, n := range notes {
		if strings.Contains(folder.String(n.Content), needle) {
			result = append(result, n)
		}
	}
	return result
}
