package interfaces

import (
	"context"
)

//go:generate mockgen -package=mock -source=renderer.go -destination=mock/renderer.go

// Renderer produces the markup for one fragment. It is the external
// rendering pipeline from the cache's point of view: invoked at most once per
// population episode and expected to be idempotent with respect to caching
// decisions.
type Renderer interface {
	Render(ctx context.Context, origin string, req RequestContext) ([]byte, error)
}
