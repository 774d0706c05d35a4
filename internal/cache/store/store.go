package store

import (
	"container/list"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"fragment-cache/internal/cache/expiry"
	"fragment-cache/internal/interfaces"
	"fragment-cache/internal/metrics"
	"fragment-cache/internal/models"
)

// Ensure Store implements interfaces.FragmentStore
var _ interfaces.FragmentStore = (*Store)(nil)

// Store is the in-memory fragment store: one live entry per key, strict byte
// budget, least-recently-used eviction. All mutation happens under the store
// mutex, which is held briefly and never across a render call.
type Store struct {
	mu      sync.Mutex
	entries map[models.CacheKey]*list.Element
	lru     *list.List // front = most recently used
	used    int64
	budget  int64

	// sweepMu serializes SweepExpired with itself; get/put are unaffected.
	sweepMu sync.Mutex

	clock  clock.Clock
	logger *zap.Logger
}

// New creates a fragment store with the given byte budget.
func New(budget int64, clk clock.Clock, logger *zap.Logger) *Store {
	return &Store{
		entries: make(map[models.CacheKey]*list.Element),
		lru:     list.New(),
		budget:  budget,
		clock:   clk,
		logger:  logger,
	}
}

// Get returns the live entry for key. A stale entry is removed and reported
// as a miss. A fresh sliding entry has its deadline pushed forward before it
// is returned, under the store lock, so no reader observes a half-updated
// deadline.
func (s *Store) Get(key models.CacheKey) (*models.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*models.CacheEntry)

	now := s.clock.Now()
	if expiry.IsStale(entry, now) {
		s.removeLocked(elem)
		metrics.UpdateStoreUsage(s.used, len(s.entries))
		return nil, false
	}

	expiry.Touch(entry, now)
	s.lru.MoveToFront(elem)
	return entry, true
}

// Put inserts content under key. Expired entries are reclaimed first, then
// least-recently-used entries are evicted until the new entry fits. Entries
// that have never been read sit at the cold end in insertion order, so the
// earliest-created one goes first. Content larger than the whole budget is
// served once by the caller but not retained.
func (s *Store) Put(key models.CacheKey, content []byte, spec models.ExpirationSpec) {
	size := entrySize(key, content)
	if size > s.budget {
		metrics.RecordOversizeFragment()
		s.logger.Debug("Fragment exceeds store budget, not retained",
			zap.String("key", string(key)),
			zap.Int64("size", size),
			zap.Int64("budget", s.budget))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	if elem, ok := s.entries[key]; ok {
		s.removeLocked(elem)
	}

	if s.used+size > s.budget {
		s.sweepLocked(now)
	}
	for s.used+size > s.budget {
		tail := s.lru.Back()
		if tail == nil {
			break
		}
		s.removeLocked(tail)
		metrics.RecordEviction()
	}

	entry := &models.CacheEntry{
		Key:            key,
		Content:        content,
		CreatedAt:      now,
		LastAccessedAt: now,
		ExpiresAt:      expiry.Deadline(spec, now),
		Size:           size,
		Expiration:     spec,
	}
	s.entries[key] = s.lru.PushFront(entry)
	s.used += size
	metrics.UpdateStoreUsage(s.used, len(s.entries))
}

// Remove drops the entry for key, if any.
func (s *Store) Remove(key models.CacheKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.entries[key]; ok {
		s.removeLocked(elem)
		metrics.UpdateStoreUsage(s.used, len(s.entries))
	}
}

// SweepExpired removes every expired entry and returns the count. Sweeps are
// serialized: a sweep requested while one is already running is a no-op.
func (s *Store) SweepExpired() int {
	if !s.sweepMu.TryLock() {
		return 0
	}
	defer s.sweepMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.sweepLocked(s.clock.Now())
	if removed > 0 {
		metrics.RecordSweep(removed)
		metrics.UpdateStoreUsage(s.used, len(s.entries))
		s.logger.Debug("Removed expired fragments", zap.Int("count", removed))
	}
	return removed
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// UsedBytes returns the approximate retained size.
func (s *Store) UsedBytes() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}

func (s *Store) sweepLocked(now time.Time) int {
	removed := 0
	for elem := s.lru.Back(); elem != nil; {
		prev := elem.Prev()
		if expiry.IsStale(elem.Value.(*models.CacheEntry), now) {
			s.removeLocked(elem)
			removed++
		}
		elem = prev
	}
	return removed
}

func (s *Store) removeLocked(elem *list.Element) {
	entry := elem.Value.(*models.CacheEntry)
	delete(s.entries, entry.Key)
	s.lru.Remove(elem)
	s.used -= entry.Size
}

// entrySize approximates the retained footprint of one entry. Keys count
// toward the budget alongside content.
func entrySize(key models.CacheKey, content []byte) int64 {
	return int64(len(key) + len(content))
}
