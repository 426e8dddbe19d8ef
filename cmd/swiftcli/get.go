package main

import (
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <container/object> [local-path|-]",
		Short: "Download an object",
		Long: `Download an object to a local file.

The default destination is the object's base name in the current directory.
A directory destination keeps the base name; "-" writes to stdout. An
existing local file is only replaced with -o.

Examples:
  swiftcli get docs/report.pdf
  swiftcli get docs/report.pdf ~/Downloads/
  swiftcli get configs/app.json - | jq .`,
		Args: invalidArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			_, err = runner.Get(cmd.Context(), args)
			return err
		},
	}
}
