// SPDX-License-Identifier: MIT
package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spmat/compat"
	"github.com/katalvlaran/spmat/internal/logger"
	"github.com/katalvlaran/spmat/loader"
	"github.com/spf13/cobra"
)

// menuExit is the menu entry that leaves the loop.
const menuExit = "4"

func (c *CLI) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Check the input directory and pick operations interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			checker := c.newChecker()
			rep, err := checker.Check(ctx)
			if err != nil {
				return err
			}

			if cache := c.loader.Cache(); cache != nil {
				stop := c.watchInputs(ctx, cache)
				defer stop()
			}

			out := cmd.OutOrStdout()
			if err := rep.Render(out); err != nil {
				return err
			}

			s := &menuSession{
				cli:     c,
				cmd:     cmd,
				checker: checker,
				report:  rep,
				in:      bufio.NewScanner(cmd.InOrStdin()),
				out:     out,
			}
			return s.run(ctx)
		},
	}
}

// watchInputs drops cache entries for files edited while the menu is open.
// A watcher that cannot start only costs freshness, so it is logged.
func (c *CLI) watchInputs(ctx context.Context, cache *loader.Cache) func() {
	w, err := loader.NewWatcher(cache, c.log.Slog())
	if err != nil {
		c.log.Warn("file watcher unavailable", "error", logger.Chain(err))
		return func() {}
	}
	if err := w.Start(ctx, c.cfg.InputDir); err != nil {
		c.log.Warn("file watcher unavailable", "error", logger.Chain(err))
		_ = w.Stop()
		return func() {}
	}

	return func() {
		if err := w.Stop(); err != nil {
			c.log.Warn("failed to stop file watcher", "error", logger.Chain(err))
		}
	}
}

// menuSession is one run of the interactive loop.
type menuSession struct {
	cli     *CLI
	cmd     *cobra.Command
	checker *compat.Checker
	report  *compat.Report
	in      *bufio.Scanner
	out     io.Writer
}

// prompt prints text and reads one trimmed line. ok is false at end of input.
func (s *menuSession) prompt(text string) (line string, ok bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *menuSession) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.out, "\nSelect an operation:")
		for _, op := range compat.Operations {
			fmt.Fprintf(s.out, "%d. %s\n", int(op), op)
		}
		fmt.Fprintf(s.out, "%s. Exit\n", menuExit)

		choice, ok := s.prompt("Enter your choice: ")
		if !ok || choice == menuExit {
			return s.in.Err()
		}

		op, err := compat.ParseOperation(choice)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}
		if !s.perform(ctx, op) {
			return s.in.Err()
		}
	}
}

// perform runs one operation round. It returns false when input ran out.
func (s *menuSession) perform(ctx context.Context, op compat.Operation) bool {
	name := opName(op)
	pairs := s.report.Compatible(op)
	if len(pairs) == 0 {
		fmt.Fprintf(s.out, "\nNo compatible matrices found for %s.\n", name)
		return true
	}

	fmt.Fprintf(s.out, "\nAvailable matrix pairs for %s:\n", name)
	for i, p := range pairs {
		fmt.Fprintf(s.out, "%d. %s and %s\n", i+1, p.Left, p.Right)
	}

	sel, ok := s.prompt("\nSelect a pair (or 'q' to quit): ")
	if !ok {
		return false
	}
	if strings.EqualFold(sel, "q") {
		fmt.Fprintln(s.out, "You have quit the operation")
		return true
	}

	idx, err := strconv.Atoi(sel)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
		return true
	}
	pair, err := s.report.PairAt(op, idx)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
		return true
	}

	fmt.Fprintf(s.out, "Matrix 1 dimensions: %s\n", s.report.Shapes[pair.Left])
	fmt.Fprintf(s.out, "Matrix 2 dimensions: %s\n", s.report.Shapes[pair.Right])

	res, err := s.checker.Perform(ctx, op, pair)
	err = s.cli.observe(opName(op), err)
	if err == nil {
		err = s.cli.emit(s.cmd, res)
	}
	if err != nil {
		s.cli.log.Error(err)
		fmt.Fprintf(s.out, "\nError performing operation: %s\n", logger.Chain(err))
	}

	return true
}
