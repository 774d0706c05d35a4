package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"fragment-cache/internal/cache"
	"fragment-cache/internal/cache/flight"
	"fragment-cache/internal/interfaces"
	"fragment-cache/internal/metrics"
	"fragment-cache/internal/models"
)

// Engine orchestrates the fragment cache: it derives the cache key for a
// render request, probes the store, and drives single-flight population on a
// miss. Region configuration is validated before it reaches the engine; no
// configuration error surfaces at render time.
type Engine struct {
	store      interfaces.FragmentStore
	keyBuilder interfaces.KeyBuilder
	flight     *flight.Coordinator
	logger     *zap.Logger

	// defaultFresh is applied when a region declares no expiration option.
	defaultFresh time.Duration

	sweepStop chan struct{}
	stopOnce  sync.Once
}

// Result describes how one render request was served.
type Result struct {
	Content []byte
	Key     models.CacheKey
	Status  models.CacheStatus
	Shared  bool // joined another caller's in-flight population
}

// New creates a fragment cache engine around the given store. When
// sweepInterval is positive a background goroutine sweeps expired entries at
// that interval until Close is called.
func New(store interfaces.FragmentStore, defaultFresh, sweepInterval time.Duration, logger *zap.Logger) *Engine {
	if defaultFresh <= 0 {
		defaultFresh = models.DefaultFreshFor
	}

	e := &Engine{
		store:        store,
		keyBuilder:   cache.NewKeyBuilder(),
		flight:       flight.NewCoordinator(logger),
		logger:       logger,
		defaultFresh: defaultFresh,
		sweepStop:    make(chan struct{}),
	}

	if sweepInterval > 0 {
		go e.sweepPeriodically(sweepInterval)
	}

	return e
}

// Render returns the cached content for the fragment variant identified by
// fragmentID and the request's vary-by dimensions, populating the cache via
// render when no fresh entry exists. A fresh hit never invokes render.
// Concurrent misses for the same key share one render invocation. Render
// failures propagate verbatim and cache nothing; there is no fallback to
// stale content.
func (e *Engine) Render(
	ctx context.Context,
	fragmentID string,
	vary models.VaryBy,
	spec models.ExpirationSpec,
	req interfaces.RequestContext,
	render flight.PopulateFunc,
) (*Result, error) {
	key := e.keyBuilder.Build(fragmentID, vary, req)
	metrics.RecordFragmentRequest(fragmentID)

	if entry, found := e.store.Get(key); found {
		metrics.RecordFragmentHit(fragmentID)
		return &Result{Content: entry.Content, Key: key, Status: models.CacheStatusHit}, nil
	}
	metrics.RecordFragmentMiss(fragmentID)

	spec = spec.OrDefault(e.defaultFresh)

	timer := metrics.TimePopulation(fragmentID)
	defer timer()

	// The store write happens inside the flight callback: one population
	// episode performs at most one put, and an abandoned population never
	// mutates the store.
	content, shared, err := e.flight.Populate(ctx, key, func(ctx context.Context) ([]byte, error) {
		content, err := render(ctx)
		if err != nil {
			return nil, err
		}
		// A renderer that ignores its ctx can still return content after the
		// initiating caller gave up. An abandoned population must not reach
		// the store.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		e.store.Put(key, content, spec)
		return content, nil
	})
	if err != nil {
		outcome := "failure"
		if errors.Is(err, models.ErrPopulationTimeout) {
			outcome = "timeout"
		}
		metrics.RecordPopulation(fragmentID, outcome)
		e.logger.Warn("Fragment population failed",
			zap.String("region", fragmentID),
			zap.String("key", string(key)),
			zap.Error(err))
		return nil, err
	}

	metrics.RecordPopulation(fragmentID, "success")
	if shared {
		metrics.RecordPopulationShared(fragmentID)
	}
	return &Result{Content: content, Key: key, Status: models.CacheStatusMiss, Shared: shared}, nil
}

// Invalidate drops the cached variant for the given fragment and request.
func (e *Engine) Invalidate(fragmentID string, vary models.VaryBy, req interfaces.RequestContext) models.CacheKey {
	key := e.keyBuilder.Build(fragmentID, vary, req)
	e.store.Remove(key)
	e.logger.Debug("Fragment invalidated",
		zap.String("region", fragmentID),
		zap.String("key", string(key)))
	return key
}

// Sweep removes expired entries from the store and returns the count.
func (e *Engine) Sweep() int {
	return e.store.SweepExpired()
}

// Close stops the background sweeper. Safe to call more than once.
func (e *Engine) Close() {
	e.stopOnce.Do(func() {
		close(e.sweepStop)
	})
}

// sweepPeriodically runs in a goroutine, sweeping expired entries until Close
func (e *Engine) sweepPeriodically(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := e.Sweep(); removed > 0 {
				e.logger.Debug("Periodic sweep removed expired fragments", zap.Int("count", removed))
			}
		case <-e.sweepStop:
			return
		}
	}
}
