// SPDX-License-Identifier: MIT
package loader_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/spmat/loader"
	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_InvalidatesChangedFile(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrix(t, dir, "a.txt", sampleText)
	b := writeMatrix(t, dir, "b.txt", sampleText)

	l, err := loader.New()
	require.NoError(t, err)
	w, err := loader.NewWatcher(l.Cache(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, dir))
	defer func() { require.NoError(t, w.Stop()) }()

	for _, p := range []string{a, b} {
		_, err := l.Load(ctx, p)
		require.NoError(t, err)
	}
	require.Equal(t, 2, l.Cache().Len())

	writeMatrix(t, dir, "a.txt", "rows=1\ncols=1\n(0, 0, 9)\n")
	require.Eventually(t, func() bool {
		_, ok := l.Cache().Digest(a)
		return !ok
	}, 5*time.Second, 10*time.Millisecond)

	// The untouched file stays cached.
	_, ok := l.Cache().Digest(b)
	assert.True(t, ok)

	m, err := l.Load(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, sparse.Shape{Rows: 1, Cols: 1}, m.Shape())
}

func TestWatcher_StartFailsOnMissingDir(t *testing.T) {
	w, err := loader.NewWatcher(loader.NewCache(), nil)
	require.NoError(t, err)
	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.NoError(t, w.Stop())
}
