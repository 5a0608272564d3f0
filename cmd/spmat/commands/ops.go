// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spmat/compat"
	"github.com/katalvlaran/spmat/sparse"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// binaryOp describes one of the add/sub/mul subcommands.
type binaryOp struct {
	use   string
	short string
	op    compat.Operation
}

// opTranspose labels transpose runs in the operation metrics.
const opTranspose = "transpose"

// opName is the metrics label of a binary operation.
func opName(op compat.Operation) string {
	return strings.ToLower(op.String())
}

var (
	opAdd = binaryOp{use: "add", short: "Add two matrices", op: compat.Addition}
	opSub = binaryOp{use: "sub", short: "Subtract the second matrix from the first", op: compat.Subtraction}
	opMul = binaryOp{use: "mul", short: "Multiply two matrices", op: compat.Multiplication}
)

func (c *CLI) newBinaryCmd(b binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   b.use + " <left> <right>",
		Short: b.short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			left, err := c.loader.Load(ctx, args[0])
			if err != nil {
				return err
			}
			right, err := c.loader.Load(ctx, args[1])
			if err != nil {
				return err
			}

			res, err := b.op.Apply(left, right)
			if err = c.observe(opName(b.op), err); err != nil {
				return zerr.With(zerr.With(zerr.Wrap(err, "failed to "+b.use+" matrices"), "left", args[0]), "right", args[1])
			}

			return c.emit(cmd, res)
		},
	}
}

func (c *CLI) newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose <matrix>",
		Short: "Transpose a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.loader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			t, err := sparse.Transpose(m)
			if err = c.observe(opTranspose, err); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to transpose matrix"), "matrix", args[0])
			}

			return c.emit(cmd, t)
		},
	}
}

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <matrix>...",
		Short: "Print shape, non-zero count and density of matrices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				m, err := c.loader.Load(cmd.Context(), path)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s: %s nnz=%d density=%.4f\n", path, m.Shape(), m.NNZ(), m.Density()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
