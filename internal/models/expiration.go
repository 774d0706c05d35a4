package models

import (
	"time"
)

// ExpirationMode selects how a cached fragment's lifetime is evaluated
type ExpirationMode string

const (
	// ExpirationAbsolute expires the entry a fixed duration after creation,
	// never extended by reads.
	ExpirationAbsolute ExpirationMode = "absolute"
	// ExpirationSliding expires the entry a fixed duration after the last
	// successful read; every fresh read resets the window.
	ExpirationSliding ExpirationMode = "sliding"
	// ExpirationAt expires the entry at a wall-clock instant, independent of
	// access pattern.
	ExpirationAt ExpirationMode = "at"
)

// DefaultFreshFor is the absolute expiration applied when a region declares
// no expiration option at all.
const DefaultFreshFor = 10 * time.Minute

// ExpirationSpec holds at most one active expiration mode for a cached
// region. The zero value means "use the default absolute duration".
type ExpirationSpec struct {
	FreshFor   time.Duration // absolute: expires FreshFor after creation
	SlidingFor time.Duration // sliding: expires SlidingFor after last read
	At         time.Time     // fixed instant
}

// Mode returns the active expiration mode. A spec with nothing set reports
// ExpirationAbsolute, matching the documented default.
func (s ExpirationSpec) Mode() ExpirationMode {
	switch {
	case s.SlidingFor > 0:
		return ExpirationSliding
	case !s.At.IsZero():
		return ExpirationAt
	default:
		return ExpirationAbsolute
	}
}

// IsZero reports whether no expiration option is set.
func (s ExpirationSpec) IsZero() bool {
	return s.FreshFor == 0 && s.SlidingFor == 0 && s.At.IsZero()
}

// Validate rejects specs that declare more than one expiration mode or a
// negative duration. A spec with no mode set is valid; the engine substitutes
// the default. An At instant in the past is also valid: the entry is created
// already stale.
func (s ExpirationSpec) Validate() error {
	modes := 0
	if s.FreshFor != 0 {
		modes++
	}
	if s.SlidingFor != 0 {
		modes++
	}
	if !s.At.IsZero() {
		modes++
	}
	if modes > 1 {
		return NewConfigurationError("", "exactly one of expires_after, expires_sliding and expires_on may be set")
	}
	if s.FreshFor < 0 {
		return NewConfigurationError("", "expires_after must be positive, got %s", s.FreshFor)
	}
	if s.SlidingFor < 0 {
		return NewConfigurationError("", "expires_sliding must be positive, got %s", s.SlidingFor)
	}
	return nil
}

// OrDefault returns the spec itself when a mode is set, otherwise an
// absolute-duration spec using fallback (or DefaultFreshFor when fallback is
// not positive).
func (s ExpirationSpec) OrDefault(fallback time.Duration) ExpirationSpec {
	if !s.IsZero() {
		return s
	}
	if fallback <= 0 {
		fallback = DefaultFreshFor
	}
	return ExpirationSpec{FreshFor: fallback}
}
