// SPDX-License-Identifier: MIT
package commands

import (
	"time"

	"github.com/katalvlaran/spmat/builder"
	"github.com/katalvlaran/spmat/sparse"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newGenCmd() *cobra.Command {
	var (
		rows, cols   int
		density      float64
		seed         int64
		lo, hi       int64
		kind         string
		lower, upper int
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a matrix file (random, diagonal or banded)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			if hi < lo || (lo == 0 && hi == 0) || hi-lo+1 <= 0 {
				return zerr.With(zerr.With(zerr.New("value range must hold a non-zero value"), "min", lo), "max", hi)
			}
			opts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithValueRange(lo, hi),
			}

			var (
				m   *sparse.Sparse
				err error
			)
			switch kind {
			case "random":
				m, err = builder.RandomSparse(rows, cols, density, opts...)
			case "diagonal":
				m, err = builder.Diagonal(rows, opts...)
			case "banded":
				m, err = builder.Banded(rows, lower, upper, opts...)
			default:
				return zerr.With(zerr.New("unknown matrix kind"), "kind", kind)
			}
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to generate matrix"), "kind", kind)
			}
			c.log.Debug("matrix generated", "kind", kind, "seed", seed, "nnz", m.NNZ())

			return c.emit(cmd, m)
		},
	}

	f := cmd.Flags()
	f.StringVar(&kind, "kind", "random", "Matrix kind: random, diagonal or banded")
	f.IntVar(&rows, "rows", 10, "Number of rows (order for diagonal/banded)")
	f.IntVar(&cols, "cols", 10, "Number of columns (random only)")
	f.Float64Var(&density, "density", 0.1, "Probability that a cell is non-zero (random only)")
	f.Int64Var(&seed, "seed", 0, "RNG seed (default: current time)")
	f.Int64Var(&lo, "min", -9, "Smallest value")
	f.Int64Var(&hi, "max", 9, "Largest value")
	f.IntVar(&lower, "lower", 1, "Sub-diagonals filled (banded only)")
	f.IntVar(&upper, "upper", 1, "Super-diagonals filled (banded only)")

	return cmd
}
