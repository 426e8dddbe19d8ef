package main

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <container[/object]>",
		Aliases: []string{"rm"},
		Short:   "Delete one object or empty container",
		Args:    invalidArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			_, err = runner.Delete(cmd.Context(), args)
			return err
		},
	}
}
