package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sagarc03/swiftcli"
)

// Environment variables read by FromEnv. They match the python-swiftclient names.
const (
	EnvUser = "ST_USER"
	EnvKey  = "ST_KEY"
	EnvAuth = "ST_AUTH"
)

var validate = validator.New()

// fieldNames maps struct fields to the names users see on the command line.
var fieldNames = map[string]string{
	"User":    "user (-u)",
	"Key":     "key (-k)",
	"AuthURL": "auth URL (-a)",
}

// Validate checks that all three fields are set and the auth URL parses.
// Missing fields wrap swiftcli.ErrMissingCredentials; a malformed URL wraps
// swiftcli.ErrInvalidArguments.
func Validate(c swiftcli.Credentials) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate credentials: %w", err)
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fieldNames[fe.Field()])
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not set", swiftcli.ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return fmt.Errorf("%w: auth URL %q is not a valid URL", swiftcli.ErrInvalidArguments, c.AuthURL)
}

// FromEnv loads overrides from the ST_USER, ST_KEY and ST_AUTH environment variables.
func FromEnv() swiftcli.Credentials {
	return swiftcli.Credentials{
		User:    os.Getenv(EnvUser),
		Key:     os.Getenv(EnvKey),
		AuthURL: os.Getenv(EnvAuth),
	}
}

// Merge merges credentials, with later values taking precedence.
// Empty strings in later values do not override non-empty values in earlier ones.
func Merge(creds ...swiftcli.Credentials) swiftcli.Credentials {
	var result swiftcli.Credentials
	for _, c := range creds {
		if c.User != "" {
			result.User = c.User
		}
		if c.Key != "" {
			result.Key = c.Key
		}
		if c.AuthURL != "" {
			result.AuthURL = c.AuthURL
		}
	}
	return result
}

// Resolve produces complete credentials from overrides and the store at storePath.
//
// Complete overrides are used as-is without touching the store. Otherwise the
// store is loaded and merged underneath the overrides; any field still empty
// after the merge, or a missing store, yields swiftcli.ErrMissingCredentials.
func Resolve(overrides swiftcli.Credentials, storePath string) (swiftcli.Credentials, error) {
	if overrides.Complete() {
		if err := Validate(overrides); err != nil {
			return swiftcli.Credentials{}, err
		}
		return overrides, nil
	}

	if storePath == "" {
		return swiftcli.Credentials{}, fmt.Errorf("%w: no credential store configured", swiftcli.ErrMissingCredentials)
	}

	stored, err := Load(storePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return swiftcli.Credentials{}, fmt.Errorf("%w: %s does not exist, run save first", swiftcli.ErrMissingCredentials, storePath)
		}
		return swiftcli.Credentials{}, err
	}

	merged := Merge(stored, overrides)
	if err := Validate(merged); err != nil {
		return swiftcli.Credentials{}, err
	}

	return merged, nil
}
