package main

import (
	"github.com/spf13/cobra"
)

func newPutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put <container[/dir]> <file>...",
		Short: "Upload files into a container",
		Long: `Upload local files into a container or pseudo-directory.

The destination is created when it does not exist. An existing object is
compared with the local file by MD5:
  - identical content is never re-uploaded
  - differing content is only replaced with -o

One line is printed per file, in the order given, also with --jobs > 1.

Examples:
  swiftcli put backups db.tar.gz
  swiftcli -o put photos/2024 *.jpg
  swiftcli put --jobs 4 logs app-*.log`,
		Args: invalidArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			_, err = runner.Put(cmd.Context(), args)
			return batchResult(err)
		},
	}

	cmd.Flags().Int("jobs", 1, "number of concurrent uploads")
	return cmd
}
