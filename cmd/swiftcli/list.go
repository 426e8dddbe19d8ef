package main

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [path...]",
		Short: "List containers, container contents or object metadata",
		Long: `List the account's containers, or each given path.

A container path prints its object names, an object path prints its
metadata, and a missing path prints "<path> does not exist". Every path is
reported even when some fail; the exit code is 1 if any did.

Examples:
  swiftcli list
  swiftcli list photos
  swiftcli list photos/2024/cat.jpg docs`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			_, err = runner.List(cmd.Context(), args)
			return batchResult(err)
		},
	}
}
