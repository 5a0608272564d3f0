// SPDX-License-Identifier: MIT
package loader_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/spmat/loader"
	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, rows, cols int, entries ...sparse.Entry) *sparse.Sparse {
	t.Helper()
	m, err := sparse.FromEntries(rows, cols, entries)
	require.NoError(t, err)

	return m
}

func TestCache_GetPutIsCopyOnRead(t *testing.T) {
	t.Parallel()
	c := loader.NewCache()
	orig := mustMatrix(t, 2, 2, sparse.Entry{Row: 0, Col: 0, Value: 1})

	_, ok := c.Get("a")
	require.False(t, ok)

	c.Put("a", orig, 42)
	// Mutating the original after Put does not reach the cache.
	require.NoError(t, orig.Set(1, 1, 9))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got.NNZ())

	// Mutating a returned copy does not reach the cache either.
	require.NoError(t, got.Set(0, 0, 0))
	again, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, again.NNZ())

	d, ok := c.Digest("a")
	require.True(t, ok)
	assert.Equal(t, uint64(42), d)
}

func TestCache_GetOrLoadCallsLoadOnce(t *testing.T) {
	t.Parallel()
	c := loader.NewCache()
	var calls atomic.Int32
	load := func(context.Context) (*sparse.Sparse, uint64, error) {
		calls.Add(1)
		return mustMatrix(t, 1, 1, sparse.Entry{Value: 5}), 1, nil
	}

	for i := 0; i < 3; i++ {
		m, err := c.GetOrLoad(context.Background(), "x", load)
		require.NoError(t, err)
		assert.Equal(t, int64(5), mustAt(t, m, 0, 0))
	}
	assert.Equal(t, int32(1), calls.Load())

	s := c.Stats()
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, uint64(1), s.Loads)
	assert.Equal(t, 1, s.Resident)
}

func TestCache_GetOrLoadConcurrentMissesShareOneLoad(t *testing.T) {
	t.Parallel()
	c := loader.NewCache()
	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (*sparse.Sparse, uint64, error) {
		calls.Add(1)
		<-release
		return mustMatrix(t, 2, 2, sparse.Entry{Row: 1, Col: 1, Value: 3}), 7, nil
	}

	const workers = 32
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)
	results := make([]*sparse.Sparse, workers)
	errs := make([]error, workers)
	started.Add(workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			results[i], errs[i] = c.GetOrLoad(context.Background(), "shared", load)
		}(i)
	}
	started.Wait()
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, int64(3), mustAt(t, results[i], 1, 1))
	}
	// Every caller got its own copy.
	require.NoError(t, results[0].Set(1, 1, 0))
	assert.Equal(t, int64(3), mustAt(t, results[1], 1, 1))
}

func TestCache_GetOrLoadCancelledCallerDoesNotFailOthers(t *testing.T) {
	t.Parallel()
	c := loader.NewCache()
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) (*sparse.Sparse, uint64, error) {
		calls.Add(1)
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		return mustMatrix(t, 1, 1, sparse.Entry{Row: 0, Col: 0, Value: 5}), 1, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := c.GetOrLoad(ctx, "shared", load)
		first <- err
	}()
	<-started
	cancel()
	require.ErrorIs(t, <-first, context.Canceled)

	second := make(chan error, 1)
	var got *sparse.Sparse
	go func() {
		var err error
		got, err = c.GetOrLoad(context.Background(), "shared", load)
		second <- err
	}()
	close(release)
	require.NoError(t, <-second)
	assert.Equal(t, int64(5), mustAt(t, got, 0, 0))
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_FailedLoadIsNotCached(t *testing.T) {
	t.Parallel()
	c := loader.NewCache()
	boom := errors.New("boom")

	_, err := c.GetOrLoad(context.Background(), "x", func(context.Context) (*sparse.Sparse, uint64, error) {
		return nil, 0, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	m, err := c.GetOrLoad(context.Background(), "x", func(context.Context) (*sparse.Sparse, uint64, error) {
		return mustMatrix(t, 1, 1), 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.NNZ())
	assert.Equal(t, 1, c.Len())
}

func TestCache_ForgetPurgeAndStale(t *testing.T) {
	t.Parallel()
	c := loader.NewCache()
	c.Put("a", mustMatrix(t, 1, 1), 1)
	c.Put("b", mustMatrix(t, 1, 1), 1)
	c.Put("b", mustMatrix(t, 1, 1), 2)

	s := c.Stats()
	assert.Equal(t, uint64(3), s.Loads)
	assert.Equal(t, uint64(1), s.Stale)

	assert.True(t, c.Forget("a"))
	assert.False(t, c.Forget("a"))
	assert.Equal(t, 1, c.Len())

	assert.Equal(t, 1, c.Purge())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Digest("b")
	assert.False(t, ok)
}

// mustAt reads one cell or fails the test.
func mustAt(t *testing.T, m *sparse.Sparse, row, col int) int64 {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err)

	return v
}
