// SPDX-License-Identifier: MIT
package compat

import (
	"strings"

	"github.com/katalvlaran/spmat/sparse"
	"go.trai.ch/zerr"
)

// Operation is a binary matrix operation offered to the user.
type Operation int

// Supported operations, numbered as in the interactive menu.
const (
	Addition Operation = iota + 1
	Subtraction
	Multiplication
)

// Operations lists every operation in menu order.
var Operations = []Operation{Addition, Subtraction, Multiplication}

// String returns the display name ("Addition").
func (o Operation) String() string {
	switch o {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	default:
		return "Operation(?)"
	}
}

// Condition describes what makes a pair compatible for o.
func (o Operation) Condition() string {
	if o == Multiplication {
		return "Cols of first = Rows of second"
	}
	return "Same dimensions"
}

// Compatible reports whether o(a, b) is defined.
func (o Operation) Compatible(a, b *sparse.Sparse) bool {
	switch o {
	case Addition, Subtraction:
		return sparse.AddCompatible(a, b)
	case Multiplication:
		return sparse.MulCompatible(a, b)
	default:
		return false
	}
}

// Apply computes o(a, b).
func (o Operation) Apply(a, b *sparse.Sparse) (*sparse.Sparse, error) {
	switch o {
	case Addition:
		return sparse.Add(a, b)
	case Subtraction:
		return sparse.Sub(a, b)
	case Multiplication:
		return sparse.Mul(a, b)
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnknownOperation, "failed to apply operation"), "operation", int(o))
	}
}

// ParseOperation accepts a menu number ("1"), a short name ("add", "sub",
// "mul") or a display name, case-insensitively.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "add", "addition":
		return Addition, nil
	case "2", "sub", "subtract", "subtraction":
		return Subtraction, nil
	case "3", "mul", "multiply", "multiplication":
		return Multiplication, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownOperation, "failed to parse operation"), "input", s)
	}
}
