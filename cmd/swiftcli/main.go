package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/action"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return swiftcli.ExitOK
	}

	var exitErr exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	formatter := a.formatter
	if formatter == nil {
		formatter = &action.HumanFormatter{}
	}
	_ = formatter.FormatError(stderr, err)
	return swiftcli.ExitCode(err)
}

// exitError ends the process with code without printing anything more.
// Used when the per-item lines already describe the failure.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:     "swiftcli [-u user] [-k key] [-a authURL] [-o] <action> [path...]",
		Version: version,
		Short:   "Client for OpenStack Swift object storage",
		Long: `swiftcli talks to an OpenStack Swift compatible object store using v1 auth.

Credentials are taken from -u/-k/-a, then ST_USER/ST_KEY/ST_AUTH, then the
credential store written by 'swiftcli save' (default ~/.swiftcli/credentials).

Exit codes:
  0  success
  1  undefined error
  2  missing dependency
  3  incorrect arguments
  4  missing credentials
  5  failed authentication`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown action %q", swiftcli.ErrInvalidArguments, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", swiftcli.ErrInvalidArguments, err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flagCreds.User, "user", "u", "", "account user (env: ST_USER)")
	pf.StringVarP(&a.flagCreds.Key, "key", "k", "", "account key (env: ST_KEY)")
	pf.StringVarP(&a.flagCreds.AuthURL, "auth", "a", "", "v1 auth URL (env: ST_AUTH)")
	pf.BoolVarP(&a.overwrite, "overwrite", "o", false, "overwrite existing objects and local files")
	pf.StringVar(&a.configFile, "config", "", "settings file (default: ~/.swiftcli/config.yaml)")
	pf.String("store", "", "credential store path (default: ~/.swiftcli/credentials)")
	pf.String("output", "", "output format: human, json, yaml (default: human)")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")
	pf.Duration("timeout", 0, "HTTP timeout, 0 for none")
	pf.String("log-level", "", "log level: debug, info, warn, error (default: warn)")
	pf.String("log-format", "", "log format: text, json (default: text)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCmd(a),
		newGetCmd(a),
		newPutCmd(a),
		newDeleteCmd(a),
		newStatsCmd(a),
		newSaveCmd(a),
		newConfigureCmd(a),
	)

	return root
}

// invalidArgs wraps a cobra argument validator so its errors map to the
// invalid arguments exit code.
func invalidArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", swiftcli.ErrInvalidArguments, err)
		}
		return nil
	}
}

// batchResult turns a partial failure into a silent exit code; the item lines
// are already printed.
func batchResult(err error) error {
	if errors.Is(err, action.ErrPartialFailure) {
		return exitError{code: swiftcli.ExitUndefined}
	}
	return err
}
