package workspace

import (
	"time"

	"github.com/MKhiriev/thoughts/internal/logger"
	"github.com/MKhiriev/thoughts/internal/utils"
)

// DefaultRecentLimit caps the "Recent Thoughts" list on Home.
const DefaultRecentLimit = 10

type Option func(*Workspace)

// WithAutoSaveDelay sets the editor debounce window.
func WithAutoSaveDelay(d time.Duration) Option {
	return func(w *Workspace) {
		if d > 0 {
			w.delay = d
		}
	}
}

func WithRecentLimit(n int) Option {
	return func(w *Workspace) {
		if n > 0 {
			w.recentLimit = n
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithIDGenerator replaces the note id allocator.
func WithIDGenerator(ids utils.IDGenerator) Option {
	return func(w *Workspace) {
		if ids != nil {
			w.ids = ids
		}
	}
}
