package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/subosito/gotenv"

	"github.com/sagarc03/swiftcli"
)

// Store keys.
const (
	KeyUser = "APIUSER"
	KeyKey  = "APIKEY"
	KeyURL  = "APIURL"
)

// DefaultStorePath returns the default store location (~/.swiftcli/credentials).
func DefaultStorePath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swiftcli", "credentials")
}

// ExpandPath expands a leading "~" in a user-supplied store path.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand store path: %w", err)
	}
	return filepath.Clean(expanded), nil
}

// Load reads credentials from the store at path. Fields absent from the file
// are left empty. A missing file returns an error wrapping os.ErrNotExist.
func Load(path string) (swiftcli.Credentials, error) {
	f, err := os.Open(filepath.Clean(path)) //#nosec G304 -- path is the user's credential store
	if err != nil {
		return swiftcli.Credentials{}, fmt.Errorf("read credential store: %w", err)
	}
	defer func() { _ = f.Close() }()

	env, err := gotenv.StrictParse(f)
	if err != nil {
		return swiftcli.Credentials{}, fmt.Errorf("parse credential store: %w", err)
	}

	return swiftcli.Credentials{
		User:    env[KeyUser],
		Key:     env[KeyKey],
		AuthURL: env[KeyURL],
	}, nil
}

// Save validates creds and writes them to path, replacing any prior content.
// Nothing is written when a field is missing or a value cannot be encoded.
func Save(path string, creds swiftcli.Credentials) error {
	if err := Validate(creds); err != nil {
		return err
	}

	data, err := encode(creds)
	if err != nil {
		return err
	}
	cleanPath := filepath.Clean(path)

	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
		return fmt.Errorf("write credential store: %w", err)
	}

	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(cleanPath, 0o600); err != nil {
		return fmt.Errorf("chmod credential store: %w", err)
	}

	return nil
}

// Exists reports whether a store file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// encode renders the store. Each value takes the first of single-quoted,
// double-quoted or unquoted form that the parser reads back unchanged.
func encode(creds swiftcli.Credentials) ([]byte, error) {
	var b strings.Builder
	for _, kv := range [][2]string{
		{KeyUser, creds.User},
		{KeyKey, creds.Key},
		{KeyURL, creds.AuthURL},
	} {
		line, err := encodeLine(kv[0], kv[1])
		if err != nil {
			return nil, err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// encodeLine returns "key=value" in a form that decodes to exactly value.
func encodeLine(key, value string) (string, error) {
	candidates := []string{
		"'" + value + "'",
		`"` + escapeValue(value, true) + `"`,
		escapeValue(value, false),
	}
	for _, c := range candidates {
		line := key + "=" + c
		env, err := gotenv.StrictParse(strings.NewReader(line))
		if err == nil && len(env) == 1 && env[key] == value {
			return line, nil
		}
	}
	return "", fmt.Errorf("%w: %s cannot be stored in the credential store", swiftcli.ErrInvalidArguments, key)
}

// escapeValue escapes the characters the parser unescapes or expands. Inside
// double quotes that is backslash, quote and dollar; unquoted only dollar.
func escapeValue(value string, quoted bool) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r == '$':
			b.WriteString(`\$`)
		case quoted && (r == '\\' || r == '"'):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
