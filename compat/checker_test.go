// SPDX-License-Identifier: MIT
package compat_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spmat/compat"
	"github.com/katalvlaran/spmat/compat/mocks"
	"github.com/katalvlaran/spmat/loader"
	"github.com/katalvlaran/spmat/sparse"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// seedDir writes name -> content files into a fresh directory.
func seedDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o600))
	}
	return dir
}

func newChecker(t *testing.T, dir string, opts ...compat.Option) *compat.Checker {
	t.Helper()
	l, err := loader.New()
	require.NoError(t, err)
	return compat.NewChecker(dir, l, opts...)
}

var threeFiles = map[string]string{
	"a.txt":     "rows=2\ncols=3\n(0, 0, 1)\n(1, 2, 2)\n",
	"b.txt":     "rows=2\ncols=3\n(0, 0, 4)\n",
	"c.txt":     "rows=3\ncols=2\n(2, 1, 5)\n",
	"notes.md":  "not a matrix",
	"other.csv": "1,2,3",
}

func TestChecker_Report(t *testing.T) {
	t.Parallel()
	c := newChecker(t, seedDir(t, threeFiles))

	rep, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, rep.Files)
	assert.Equal(t, sparse.Shape{Rows: 3, Cols: 2}, rep.Shapes["c.txt"])

	ab := compat.Pair{Left: "a.txt", Right: "b.txt"}
	assert.Equal(t, []compat.Pair{ab}, rep.Compatible(compat.Addition))
	assert.Equal(t, []compat.Pair{ab}, rep.Compatible(compat.Subtraction))
	assert.Equal(t, []compat.Pair{
		{Left: "a.txt", Right: "c.txt"},
		{Left: "c.txt", Right: "a.txt"},
		{Left: "b.txt", Right: "c.txt"},
		{Left: "c.txt", Right: "b.txt"},
	}, rep.Compatible(compat.Multiplication))
	require.Len(t, rep.Notes, 3)
	assert.Equal(t, compat.NoteMultiply, rep.Notes[0].Kind)
	assert.Equal(t, ab, rep.Notes[0].Pair)

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	g := goldie.New(t)
	g.Assert(t, "report", buf.Bytes())
}

func TestChecker_Perform(t *testing.T) {
	t.Parallel()
	c := newChecker(t, seedDir(t, threeFiles))
	rep, err := c.Check(context.Background())
	require.NoError(t, err)

	pair, err := rep.PairAt(compat.Addition, 1)
	require.NoError(t, err)
	sum, err := c.Perform(context.Background(), compat.Addition, pair)
	require.NoError(t, err)
	assert.Equal(t, []sparse.Entry{{Row: 0, Col: 0, Value: 5}, {Row: 1, Col: 2, Value: 2}}, sum.Entries())

	pair, err = rep.PairAt(compat.Multiplication, 1)
	require.NoError(t, err)
	prod, err := c.Perform(context.Background(), compat.Multiplication, pair)
	require.NoError(t, err)
	// a(1,2)=2 times c(2,1)=5.
	assert.Equal(t, []sparse.Entry{{Row: 1, Col: 1, Value: 10}}, prod.Entries())

	_, err = rep.PairAt(compat.Subtraction, 2)
	require.ErrorIs(t, err, compat.ErrNoSuchPair)
	_, err = rep.PairAt(compat.Subtraction, 0)
	require.ErrorIs(t, err, compat.ErrNoSuchPair)

	_, err = c.Perform(context.Background(), compat.Addition, compat.Pair{Left: "a.txt", Right: "c.txt"})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestChecker_Failures(t *testing.T) {
	t.Parallel()

	_, err := newChecker(t, filepath.Join(t.TempDir(), "missing")).Check(context.Background())
	require.ErrorIs(t, err, compat.ErrDirNotFound)

	_, err = newChecker(t, seedDir(t, map[string]string{"a.txt": "rows=1\ncols=1\n"})).Check(context.Background())
	require.ErrorIs(t, err, compat.ErrTooFewFiles)

	_, err = newChecker(t, seedDir(t, map[string]string{
		"a.txt": "rows=1\ncols=2\n",
		"b.txt": "rows=3\ncols=4\n",
	})).Check(context.Background())
	require.ErrorIs(t, err, compat.ErrNoCompatiblePairs)

	// Extension filter.
	c := newChecker(t, seedDir(t, map[string]string{
		"a.mtx": "rows=1\ncols=1\n",
		"b.mtx": "rows=1\ncols=1\n",
	}), compat.WithExtension(".mtx"))
	files, err := c.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mtx", "b.mtx"}, files)
}

func TestChecker_LoadErrorCarriesFile(t *testing.T) {
	t.Parallel()
	dir := seedDir(t, map[string]string{"a.txt": "", "b.txt": ""})
	ctrl := gomock.NewController(t)
	ml := mocks.NewMockMatrixLoader(ctrl)
	boom := errors.New("disk unreadable")
	ok, err := sparse.NewSparse(1, 1)
	require.NoError(t, err)
	ml.EXPECT().Load(gomock.Any(), filepath.Join(dir, "a.txt")).Return(ok, nil).AnyTimes()
	ml.EXPECT().Load(gomock.Any(), filepath.Join(dir, "b.txt")).Return(nil, boom)

	_, err = compat.NewChecker(dir, ml, compat.WithParallelLoads(1)).Check(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to check matrix compatibility")
}

func TestParseOperation(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]compat.Operation{
		"1": compat.Addition, "Add": compat.Addition,
		" 2 ": compat.Subtraction, "subtraction": compat.Subtraction,
		"3": compat.Multiplication, "MUL": compat.Multiplication,
	} {
		got, err := compat.ParseOperation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := compat.ParseOperation("4")
	require.ErrorIs(t, err, compat.ErrUnknownOperation)

	_, err = compat.Operation(9).Apply(nil, nil)
	require.ErrorIs(t, err, compat.ErrUnknownOperation)
	assert.Equal(t, "Multiplication", compat.Multiplication.String())
	assert.Panics(t, func() { compat.WithParallelLoads(0) })
}
