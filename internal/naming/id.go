// Package naming provides identifier generation and name validation for
// layouts and dashboards. Keeping the logic here allows future changes
// (length/source) without touching call sites.
package naming

import (
	"github.com/google/uuid"
)

// NewID returns a collision-resistant opaque token suitable as a map key.
// The primary source is a crypto-random UUID; when the randomness source
// fails it falls back to a time-seeded base36 token. It never blocks and
// never fails, so call sites do not branch on which source produced the
// token.
func NewID() string {
	if u, err := uuid.NewRandom(); err == nil {
		return u.String()
	}
	return NewCompactID()
}

// NewDashboardID mints a dashboard identifier.
func NewDashboardID() string { return "db-" + NewID() }

// NewInstanceID mints a widget instance identifier.
func NewInstanceID() string { return "w-" + NewID() }
