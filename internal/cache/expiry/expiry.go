// Package expiry evaluates fragment liveness for the three expiration modes.
// An entry moves from fresh to stale exactly once, when the evaluated time
// passes its deadline; only sliding-window entries ever move the deadline.
package expiry

import (
	"time"

	"fragment-cache/internal/models"
)

// Deadline computes the initial expiry instant for an entry created at now.
// A fixed instant already in the past is accepted as-is: the entry is created
// stale and the next read removes it. Construct-then-expire is valid, not a
// configuration error.
func Deadline(spec models.ExpirationSpec, now time.Time) time.Time {
	switch spec.Mode() {
	case models.ExpirationSliding:
		return now.Add(spec.SlidingFor)
	case models.ExpirationAt:
		return spec.At
	default:
		return now.Add(spec.FreshFor)
	}
}

// IsStale reports whether the entry's deadline has passed at now.
func IsStale(entry *models.CacheEntry, now time.Time) bool {
	return now.After(entry.ExpiresAt)
}

// Touch records a successful fresh read. A sliding entry's deadline moves to
// now plus its window; absolute and fixed-instant deadlines are never
// extended. Callers must not touch an entry that IsStale already reported
// stale.
func Touch(entry *models.CacheEntry, now time.Time) {
	entry.LastAccessedAt = now
	if entry.Expiration.Mode() == models.ExpirationSliding {
		entry.ExpiresAt = now.Add(entry.Expiration.SlidingFor)
	}
}
