// Package flight collapses concurrent populations of the same cache key into
// a single upstream render, preventing the stampede where N cold requests for
// one fragment each invoke the expensive rendering pipeline.
package flight

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"fragment-cache/internal/models"
)

// PopulateFunc produces the content for one population episode. It must
// honor ctx cancellation.
type PopulateFunc func(ctx context.Context) ([]byte, error)

// Coordinator runs at most one population per key at a time. Populations for
// different keys never block each other.
type Coordinator struct {
	group  singleflight.Group
	logger *zap.Logger
}

// NewCoordinator creates a new population coordinator
func NewCoordinator(logger *zap.Logger) *Coordinator {
	return &Coordinator{logger: logger}
}

// Populate executes fn once per key per episode. The first caller runs fn;
// concurrent callers for the same key wait on its result and receive the same
// content or the same error. The call record is retired when the population
// completes, so a later call for the same key starts a fresh population and a
// failure is never replayed.
//
// When ctx expires before the population completes, the caller receives
// models.ErrPopulationTimeout and the call record is dropped so the next
// request starts over. fn may still be running at that point; it observes the
// expired ctx and must not commit its result. The second return value reports
// whether the result was shared with another caller's in-flight population.
func (c *Coordinator) Populate(ctx context.Context, key models.CacheKey, fn PopulateFunc) ([]byte, bool, error) {
	ch := c.group.DoChan(string(key), func() (interface{}, error) {
		return fn(ctx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			if errors.Is(res.Err, context.DeadlineExceeded) || errors.Is(res.Err, context.Canceled) {
				return nil, res.Shared, models.ErrPopulationTimeout
			}
			return nil, res.Shared, res.Err
		}
		content, _ := res.Val.([]byte)
		return content, res.Shared, nil
	case <-ctx.Done():
		// The population is abandoned: later callers must not join it.
		c.group.Forget(string(key))
		c.logger.Warn("Fragment population abandoned",
			zap.String("key", string(key)),
			zap.Error(ctx.Err()))
		return nil, false, models.ErrPopulationTimeout
	}
}
