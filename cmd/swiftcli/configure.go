package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/action"
	"github.com/sagarc03/swiftcli/credentials"
	"github.com/sagarc03/swiftcli/swift"
)

// errCancelled ends configure without writing anything.
var errCancelled = errors.New("cancelled")

func newConfigureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Write the credential store interactively",
		Long: `Prompt for user, key and auth URL and write them to the credential store.

Values already given with -u/-k/-a or ST_USER/ST_KEY/ST_AUTH, or present in
an existing store, are offered as defaults. The credentials are tested
against the auth URL before saving.`,
		Args: invalidArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.configure(cmd.Context())
			if errors.Is(err, errCancelled) {
				_, _ = fmt.Fprintln(a.stdout, "Cancelled.")
				return nil
			}
			return err
		},
	}
}

func (a *app) configure(ctx context.Context) error {
	storePath, err := a.storePath()
	if err != nil {
		return err
	}

	defaults := a.overrides()
	if credentials.Exists(storePath) {
		if err := confirm(fmt.Sprintf("Credential store %s exists. Replace it", storePath)); err != nil {
			return err
		}
		if stored, loadErr := credentials.Load(storePath); loadErr == nil {
			defaults = credentials.Merge(stored, defaults)
		}
	}

	creds, err := promptCredentials(defaults)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(a.stdout, "Testing credentials... ")
	if authErr := a.testCredentials(ctx, creds); authErr != nil {
		_, _ = fmt.Fprintln(a.stdout, "FAILED")
		_, _ = fmt.Fprintf(a.stdout, "Warning: %v\n", authErr)
		if err := confirm("Save credentials anyway"); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(a.stdout, "OK")
	}

	runner := action.New(nil, swiftcli.Session{}, a.runnerOptions()...)
	_, err = runner.Save(creds, storePath)
	return err
}

func promptCredentials(defaults swiftcli.Credentials) (swiftcli.Credentials, error) {
	var creds swiftcli.Credentials
	var err error

	userPrompt := promptui.Prompt{
		Label:    "User",
		Default:  defaults.User,
		Validate: requireValue("user"),
	}
	if creds.User, err = userPrompt.Run(); err != nil {
		return creds, promptError(err)
	}

	keyPrompt := promptui.Prompt{
		Label:    "Key",
		Mask:     '*',
		Validate: requireValue("key"),
	}
	if creds.Key, err = keyPrompt.Run(); err != nil {
		return creds, promptError(err)
	}

	urlPrompt := promptui.Prompt{
		Label:    "Auth URL",
		Default:  defaults.AuthURL,
		Validate: validateAuthURL,
	}
	if creds.AuthURL, err = urlPrompt.Run(); err != nil {
		return creds, promptError(err)
	}

	return creds, nil
}

func (a *app) testCredentials(ctx context.Context, creds swiftcli.Credentials) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := swift.New(swift.WithLogger(a.logger))
	_, err := client.Authenticate(ctx, creds)
	return err
}

func requireValue(name string) promptui.ValidateFunc {
	return func(input string) error {
		if input == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateAuthURL(input string) error {
	if input == "" {
		return errors.New("auth URL is required")
	}
	parsedURL, err := url.Parse(input)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return errors.New("URL has no host")
	}
	return nil
}

func confirm(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return promptError(err)
	}
	return nil
}

// promptError maps a declined or interrupted prompt to errCancelled.
func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrEOF) {
		return errCancelled
	}
	return err
}
