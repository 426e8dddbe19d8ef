package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/action"
	"github.com/sagarc03/swiftcli/config"
	"github.com/sagarc03/swiftcli/credentials"
	"github.com/sagarc03/swiftcli/swift"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	flagCreds  swiftcli.Credentials
	overwrite  bool
	verbose    bool

	cfg       *config.Config
	logger    *slog.Logger
	formatter action.Formatter
}

// setup loads settings, configures logging and picks the formatter.
func (a *app) setup(cmd *cobra.Command) error {
	var files []string
	if a.configFile != "" {
		files = []string{a.configFile}
	}

	cfg, err := config.Load(files, cmd.Flags())
	if err != nil {
		return fmt.Errorf("%w: %w", swiftcli.ErrInvalidArguments, err)
	}
	a.cfg = cfg
	cmd.SetContext(config.WithContext(cmd.Context(), cfg))

	a.logger = setupLogging(a.stderr, cfg.Log, a.verbose)

	a.formatter, err = action.NewFormatter(cfg.Output.Format, cfg.Output.Quiet)
	return err
}

// storePath returns the expanded credential store path.
func (a *app) storePath() (string, error) {
	p, err := credentials.ExpandPath(a.cfg.Store.Path)
	if err != nil {
		return "", fmt.Errorf("store path: %w", err)
	}
	return p, nil
}

// overrides returns the credentials given on the command line or in the
// environment. Flags win over environment variables.
func (a *app) overrides() swiftcli.Credentials {
	return credentials.Merge(credentials.FromEnv(), a.flagCreds)
}

// runnerOptions are the action options derived from flags and settings.
func (a *app) runnerOptions() []action.Option {
	return []action.Option{
		action.WithFormatter(a.formatter),
		action.WithOutput(a.stdout, a.stderr),
		action.WithLogger(a.logger),
		action.WithOverwrite(a.overwrite),
		action.WithJobs(a.cfg.Transfer.Jobs),
	}
}

// connect resolves credentials, authenticates and returns a runner bound to
// the new session.
func (a *app) connect(ctx context.Context) (*action.Runner, error) {
	storePath, err := a.storePath()
	if err != nil {
		return nil, err
	}

	creds, err := credentials.Resolve(a.overrides(), storePath)
	if err != nil {
		return nil, err
	}

	client := swift.New(
		swift.WithTimeout(a.cfg.HTTP.Timeout),
		swift.WithLogger(a.logger),
	)

	sess, err := client.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	return action.New(client, sess, a.runnerOptions()...), nil
}
