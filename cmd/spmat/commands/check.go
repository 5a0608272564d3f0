// SPDX-License-Identifier: MIT
package commands

import (
	"github.com/katalvlaran/spmat/compat"
	"github.com/spf13/cobra"
)

func (c *CLI) newChecker() *compat.Checker {
	return compat.NewChecker(c.cfg.InputDir, c.loader,
		compat.WithExtension(c.cfg.Extension),
		compat.WithLogger(c.log.Slog()),
	)
}

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report which matrix files in the input directory can be combined",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := c.newChecker().Check(cmd.Context())
			if err != nil {
				return err
			}
			return rep.Render(cmd.OutOrStdout())
		},
	}
}
