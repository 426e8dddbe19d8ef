package main

import (
	"github.com/spf13/cobra"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/action"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save credentials to the credential store",
		Long: `Save user, key and auth URL to the credential store.

All three values must come from -u/-k/-a or ST_USER/ST_KEY/ST_AUTH; the
existing store is not consulted and is replaced. Nothing is written when a
value is missing. The file is created with mode 0600.

Example:
  swiftcli -u account:user -k secret -a https://swift.example.com/auth/v1.0 save`,
		Args: invalidArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			storePath, err := a.storePath()
			if err != nil {
				return err
			}

			runner := action.New(nil, swiftcli.Session{}, a.runnerOptions()...)
			_, err = runner.Save(a.overrides(), storePath)
			return err
		},
	}
}
