package interfaces

import (
	"fragment-cache/internal/models"
)

//go:generate mockgen -package=mock -source=store.go -destination=mock/store.go

// FragmentStore is the keyed storage of rendered fragments. Implementations
// enforce a byte budget, keep at most one live entry per key and never return
// an entry whose deadline has passed.
type FragmentStore interface {
	// Get returns the live entry for key, refreshing a sliding deadline on the
	// way out. A stale entry is removed and reported as a miss.
	Get(key models.CacheKey) (*models.CacheEntry, bool)
	// Put inserts content under key, evicting least-recently-used entries
	// until the byte budget is satisfied. Content larger than the whole budget
	// is silently not retained.
	Put(key models.CacheKey, content []byte, spec models.ExpirationSpec)
	// Remove drops the entry for key, if any.
	Remove(key models.CacheKey)
	// SweepExpired removes every expired entry and returns the count. At most
	// one sweep runs at a time.
	SweepExpired() int
	// Len returns the number of retained entries.
	Len() int
	// UsedBytes returns the approximate retained size.
	UsedBytes() int64
}
