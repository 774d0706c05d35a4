package interfaces

import (
	"fragment-cache/internal/models"
)

//go:generate mockgen -package=mock -source=keybuilder.go -destination=mock/keybuilder.go

// KeyBuilder derives deterministic cache keys from a fragment identity, a
// vary-by declaration and a request. Build is pure and total: equal inputs
// always produce equal keys and it never fails.
type KeyBuilder interface {
	Build(fragmentID string, vary models.VaryBy, req RequestContext) models.CacheKey
}
