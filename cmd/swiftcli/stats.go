package main

import (
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show account usage",
		Long:  `Print the account's X-Account-* headers, sorted by name.`,
		Args:  invalidArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			_, err = runner.Stats(cmd.Context())
			return err
		},
	}
}
