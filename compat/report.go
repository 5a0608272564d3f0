// SPDX-License-Identifier: MIT
package compat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/spmat/sparse"
)

// Pair is an ordered pair of matrix files; operations compute Left op Right.
type Pair struct {
	Left  string
	Right string
}

// NoteKind tells which check a pair failed.
type NoteKind int

// Note kinds.
const (
	NoteElementwise NoteKind = iota + 1 // shapes differ: no addition or subtraction
	NoteMultiply                        // left cols != right rows
)

// Note records a pair that failed a compatibility check.
type Note struct {
	Kind  NoteKind
	Pair  Pair
	Left  sparse.Shape
	Right sparse.Shape
}

// Report is the outcome of a directory check.
type Report struct {
	Dir    string
	Files  []string                // sorted file names
	Shapes map[string]sparse.Shape // per file
	Pairs  map[Operation][]Pair    // compatible pairs per operation
	Notes  []Note                  // incompatibilities, in evaluation order
}

// Compatible returns the pairs usable for op.
func (r *Report) Compatible(op Operation) []Pair {
	return r.Pairs[op]
}

// Empty reports whether no pair supports any operation.
func (r *Report) Empty() bool {
	for _, op := range Operations {
		if len(r.Pairs[op]) > 0 {
			return false
		}
	}
	return true
}

// RenderFiles writes the numbered file listing.
func (r *Report) RenderFiles(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Available matrix files:")
	for i, f := range r.Files {
		fmt.Fprintf(bw, "%d. %s (%s)\n", i+1, f, r.Shapes[f])
	}
	return bw.Flush()
}

// RenderNotes writes one block per incompatible pair.
func (r *Report) RenderNotes(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, n := range r.Notes {
		switch n.Kind {
		case NoteElementwise:
			fmt.Fprintf(bw, "Addition/Subtraction not possible between %s and %s:\n", n.Pair.Left, n.Pair.Right)
			fmt.Fprintf(bw, "  Matrix 1: %s\n", n.Left)
			fmt.Fprintf(bw, "  Matrix 2: %s\n", n.Right)
		case NoteMultiply:
			fmt.Fprintf(bw, "Multiplication not possible between %s and %s:\n", n.Pair.Left, n.Pair.Right)
			fmt.Fprintf(bw, "  Matrix 1 columns: %d\n", n.Left.Cols)
			fmt.Fprintf(bw, "  Matrix 2 rows: %d\n", n.Right.Rows)
		}
	}
	return bw.Flush()
}

// RenderPairs writes the compatible pairs grouped by operation.
func (r *Report) RenderPairs(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Compatible matrix pairs for operations:")
	for _, op := range Operations {
		pairs := r.Pairs[op]
		if len(pairs) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n%s:\n", op)
		for i, p := range pairs {
			fmt.Fprintf(bw, "%d. %s <-> %s | Condition: %s\n", i+1, p.Left, p.Right, op.Condition())
		}
	}
	return bw.Flush()
}

// Render writes files, notes and pairs separated by blank lines.
func (r *Report) Render(w io.Writer) error {
	if err := r.RenderFiles(w); err != nil {
		return err
	}
	if len(r.Notes) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := r.RenderNotes(w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return r.RenderPairs(w)
}
