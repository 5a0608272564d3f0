// SPDX-License-Identifier: MIT
package metrics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/spmat/internal/metrics"
	"github.com/katalvlaran/spmat/loader"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CacheMetrics(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("rows=1\ncols=1\n(0, 0, 3)\n"), 0o600))

	cache := loader.NewCache()
	l, err := loader.New(loader.WithCache(cache))
	require.NoError(t, err)
	for range 3 {
		_, err = l.Load(context.Background(), path)
		require.NoError(t, err)
	}

	r := metrics.New(cache)
	const want = `
# HELP spmat_cache_hits_total Loads served from the matrix cache.
# TYPE spmat_cache_hits_total counter
spmat_cache_hits_total 2
# HELP spmat_cache_loads_total Matrices parsed and stored in the cache.
# TYPE spmat_cache_loads_total counter
spmat_cache_loads_total 1
# HELP spmat_cache_misses_total Loads that found no cached matrix.
# TYPE spmat_cache_misses_total counter
spmat_cache_misses_total 1
# HELP spmat_cache_resident Matrices currently cached.
# TYPE spmat_cache_resident gauge
spmat_cache_resident 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(want),
		"spmat_cache_hits_total", "spmat_cache_loads_total", "spmat_cache_misses_total", "spmat_cache_resident"))
}

func TestRegistry_Operations(t *testing.T) {
	t.Parallel()
	r := metrics.New(nil)
	r.ObserveOperation("addition", nil)
	r.ObserveOperation("addition", nil)
	r.ObserveOperation("multiplication", errors.New("shape mismatch"))

	const want = `
# HELP spmat_operations_total Matrix operations performed, by operation and result.
# TYPE spmat_operations_total counter
spmat_operations_total{operation="addition",result="ok"} 2
spmat_operations_total{operation="multiplication",result="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(want), "spmat_operations_total"))

	// Without a cache only the operation counter is registered.
	n, err := testutil.GatherAndCount(r.Gatherer())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRegistry_WriteFile(t *testing.T) {
	t.Parallel()
	r := metrics.New(loader.NewCache())
	r.ObserveOperation("transpose", nil)

	path := filepath.Join(t.TempDir(), "spmat.prom")
	require.NoError(t, r.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `spmat_operations_total{operation="transpose",result="ok"} 1`)
	assert.Contains(t, string(data), "spmat_cache_resident 0")

	err = r.WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics")
}
