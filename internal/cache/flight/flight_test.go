package flight

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fragment-cache/internal/models"
)

func TestCoordinator_SingleFlight(t *testing.T) {
	c := NewCoordinator(zap.NewNop())

	var invocations int32
	release := make(chan struct{})

	const callers = 20
	results := make([][]byte, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results[n], _, errs[n] = c.Populate(context.Background(), "k", func(ctx context.Context) ([]byte, error) {
				atomic.AddInt32(&invocations, 1)
				<-release
				return []byte("rendered"), nil
			})
		}(i)
	}

	// Give every caller time to join the in-flight population.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&invocations))
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []byte("rendered"), results[i])
	}
}

func TestCoordinator_DistinctKeysDoNotBlock(t *testing.T) {
	c := NewCoordinator(zap.NewNop())

	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	go func() {
		c.Populate(context.Background(), "slow", func(ctx context.Context) ([]byte, error) {
			close(slowStarted)
			<-slowRelease
			return []byte("slow"), nil
		})
	}()
	<-slowStarted
	defer close(slowRelease)

	done := make(chan struct{})
	go func() {
		defer close(done)
		content, _, err := c.Populate(context.Background(), "fast", func(ctx context.Context) ([]byte, error) {
			return []byte("fast"), nil
		})
		assert.NoError(t, err)
		assert.Equal(t, []byte("fast"), content)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("population for a distinct key was blocked by an unrelated in-flight population")
	}
}

func TestCoordinator_FailurePropagatesToAllWaiters(t *testing.T) {
	c := NewCoordinator(zap.NewNop())

	renderErr := errors.New("upstream render failed")
	var invocations int32
	release := make(chan struct{})

	const callers = 5
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _, errs[n] = c.Populate(context.Background(), "k", func(ctx context.Context) ([]byte, error) {
				atomic.AddInt32(&invocations, 1)
				<-release
				return nil, renderErr
			})
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&invocations))
	for i := 0; i < callers; i++ {
		assert.ErrorIs(t, errs[i], renderErr)
	}
}

func TestCoordinator_FailureIsNotReplayed(t *testing.T) {
	c := NewCoordinator(zap.NewNop())

	var invocations int32
	_, _, err := c.Populate(context.Background(), "k", func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&invocations, 1)
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	content, _, err := c.Populate(context.Background(), "k", func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&invocations, 1)
		return []byte("second attempt"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("second attempt"), content)
	assert.Equal(t, int32(2), atomic.LoadInt32(&invocations))
}

func TestCoordinator_Timeout(t *testing.T) {
	c := NewCoordinator(zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, _, err := c.Populate(ctx, "k", func(ctx context.Context) ([]byte, error) {
		select {
		case <-time.After(time.Second):
			return []byte("too late"), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	assert.ErrorIs(t, err, models.ErrPopulationTimeout)
}

func TestCoordinator_TimeoutDistinctFromRenderFailure(t *testing.T) {
	c := NewCoordinator(zap.NewNop())

	renderErr := errors.New("boom")
	_, _, err := c.Populate(context.Background(), "k", func(ctx context.Context) ([]byte, error) {
		return nil, renderErr
	})

	assert.ErrorIs(t, err, renderErr)
	assert.NotErrorIs(t, err, models.ErrPopulationTimeout)
}

func TestCoordinator_FreshPopulationAfterTimeout(t *testing.T) {
	c := NewCoordinator(zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := c.Populate(ctx, "k", func(ctx context.Context) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	require.ErrorIs(t, err, models.ErrPopulationTimeout)

	content, _, err := c.Populate(context.Background(), "k", func(ctx context.Context) ([]byte, error) {
		return []byte("recovered"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("recovered"), content)
}
