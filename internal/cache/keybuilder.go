package cache

import (
	"crypto/md5"
	"fmt"
	"sort"

	"fragment-cache/internal/interfaces"
	"fragment-cache/internal/models"
)

// Ensure KeyBuilderImpl implements interfaces.KeyBuilder
var _ interfaces.KeyBuilder = (*KeyBuilderImpl)(nil)

// absentValue is hashed in place of an enabled dimension the request does not
// carry. Absence must be distinguishing, so it participates like any other
// value. The NUL prefix keeps it from colliding with a real dimension value.
const absentValue = "\x00absent"

// KeyBuilderImpl implements the KeyBuilder interface
type KeyBuilderImpl struct{}

// NewKeyBuilder creates a new KeyBuilder instance
func NewKeyBuilder() interfaces.KeyBuilder {
	return &KeyBuilderImpl{}
}

// dimension is one enabled vary-by dimension resolved against a request.
type dimension struct {
	name  string
	value string
}

// Build derives the cache key for one fragment variant. Enabled dimensions
// are collected as name/value pairs, sorted by name and hashed, so the order
// in which the caller listed vary-by keys never changes the key. Dimension
// values are taken verbatim: two logically identical query strings with
// different casing produce different keys, which is the documented caller
// expectation.
func (kb *KeyBuilderImpl) Build(fragmentID string, vary models.VaryBy, req interfaces.RequestContext) models.CacheKey {
	dims := make([]dimension, 0, 2+len(vary.QueryKeys)+len(vary.CookieKeys)+len(vary.HeaderKeys))

	if vary.User {
		dims = append(dims, dimension{"user", orAbsent(req.User())})
	}
	if vary.Culture {
		dims = append(dims, dimension{"culture", orAbsent(req.Culture())})
	}
	for _, k := range vary.QueryKeys {
		dims = append(dims, dimension{"query:" + k, orAbsent(req.Query(k))})
	}
	for _, k := range vary.CookieKeys {
		dims = append(dims, dimension{"cookie:" + k, orAbsent(req.Cookie(k))})
	}
	for _, k := range vary.HeaderKeys {
		dims = append(dims, dimension{"header:" + k, orAbsent(req.Header(k))})
	}

	sort.Slice(dims, func(i, j int) bool { return dims[i].name < dims[j].name })

	// Every name and value is length-prefixed into the digest. The encoding
	// stays unambiguous no matter what bytes a dimension value carries: a
	// value cannot forge another dimension's boundary.
	hasher := md5.New()
	for _, d := range dims {
		fmt.Fprintf(hasher, "%d:%s", len(d.name), d.name)
		fmt.Fprintf(hasher, "%d:%s", len(d.value), d.value)
	}

	return models.CacheKey(fmt.Sprintf("%s:%x", fragmentID, hasher.Sum(nil)))
}

// orAbsent substitutes the sentinel for a dimension the request does not carry.
func orAbsent(value string, present bool) string {
	if !present {
		return absentValue
	}
	return value
}
