// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"

	"github.com/katalvlaran/spmat/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Overrides the root hook: printing the version must not need a config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spmat version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
