package swiftcli

import (
	"fmt"
)

// Credentials identify a Swift account for the v1 auth handshake.
type Credentials struct {
	User    string `json:"user" yaml:"user" validate:"required"`
	Key     string `json:"key" yaml:"key" validate:"required"`
	AuthURL string `json:"auth_url" yaml:"auth_url" validate:"required,url"`
}

// Complete reports whether all three fields are set.
func (c Credentials) Complete() bool {
	return c.User != "" && c.Key != "" && c.AuthURL != ""
}

// Session is the result of a successful authentication. It is created once per
// invocation and passed by value to every transfer operation.
type Session struct {
	StorageURL string
	Token      string
}

// Outcome classifies the result of a single put or list item.
type Outcome int

const (
	OutcomeUploaded Outcome = iota
	OutcomeSkippedIdentical
	OutcomeSkippedConflict
	OutcomeNotFound
	OutcomeError
	// OutcomeListed is used by list for paths that resolved to an object or container.
	OutcomeListed
)

var outcomeNames = map[Outcome]string{
	OutcomeUploaded:         "uploaded",
	OutcomeSkippedIdentical: "skipped-identical",
	OutcomeSkippedConflict:  "skipped-conflict",
	OutcomeNotFound:         "not-found",
	OutcomeError:            "error",
	OutcomeListed:           "listed",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText renders the outcome by name for JSON and YAML output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// IsError reports whether the outcome should make the batch exit non-zero.
func (o Outcome) IsError() bool {
	return o == OutcomeError
}
