package models

import (
	"time"
)

// CacheKey identifies one cached fragment variant. Keys are opaque to every
// component except the key builder that derives them.
type CacheKey string

// CacheStatus describes how a render request was served
type CacheStatus string

const (
	CacheStatusHit  CacheStatus = "HIT"
	CacheStatusMiss CacheStatus = "MISS"
)

// VaryBy declares which request-derived dimensions participate in cache key
// construction for a region. Dimension values are taken verbatim; callers are
// responsible for canonical casing.
type VaryBy struct {
	User       bool     `yaml:"vary_by_user"`
	QueryKeys  []string `yaml:"vary_by_query"`
	CookieKeys []string `yaml:"vary_by_cookie"`
	HeaderKeys []string `yaml:"vary_by_header"`
	Culture    bool     `yaml:"vary_by_culture"`
}

// CacheEntry is one retained fragment. Entries are owned exclusively by the
// fragment store; nothing outside the store mutates them.
type CacheEntry struct {
	Key            CacheKey
	Content        []byte
	CreatedAt      time.Time
	LastAccessedAt time.Time
	ExpiresAt      time.Time
	Size           int64
	Expiration     ExpirationSpec
}
