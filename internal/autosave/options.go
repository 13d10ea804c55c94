package autosave

import (
	"time"

	"github.com/MKhiriev/thoughts/internal/logger"
)

// DefaultDelay is the quiet period after the last edit before a write.
const DefaultDelay = 1000 * time.Millisecond

type Option func(*Coordinator)

// WithDelay sets the debounce window. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithNotify registers a callback for status changes. It runs outside the
// coordinator's locks, possibly on the timer goroutine.
func WithNotify(fn func(Event)) Option {
	return func(c *Coordinator) {
		c.notify = fn
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}
