package action

import (
	"bytes"
	"strings"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/swift"
)

// Skip reasons reported by put.
const (
	ReasonConflict           = "exists and differs, refusing to overwrite without -o"
	ReasonIdenticalOverwrite = "identical, not re-uploading"
	ReasonIdentical          = "identical"
)

// Kinds of listed paths.
const (
	KindContainer = "container"
	KindObject    = "object"
)

// AccountListing is the container listing of the account.
type AccountListing struct {
	Containers []string `json:"containers" yaml:"containers"`
	Raw        []byte   `json:"-" yaml:"-"`
}

// ListResult is the outcome of listing one path.
type ListResult struct {
	Path       swiftcli.ObjectPath     `json:"path" yaml:"path"`
	Outcome    swiftcli.Outcome        `json:"outcome" yaml:"outcome"`
	Kind       string                  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Names      []string                `json:"names,omitempty" yaml:"names,omitempty"`
	Object     *swift.ResponseMetadata `json:"object,omitempty" yaml:"object,omitempty"`
	StatusCode int                     `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Body       string                  `json:"body,omitempty" yaml:"body,omitempty"`
	Error      string                  `json:"error,omitempty" yaml:"error,omitempty"`
	Raw        []byte                  `json:"-" yaml:"-"`
	Err        error                   `json:"-" yaml:"-"`
}

func (r *ListResult) fail(err error) {
	r.Outcome = swiftcli.OutcomeError
	r.Err = err
	r.Error = err.Error()
}

// PutResult is the outcome of uploading one local file.
type PutResult struct {
	LocalPath  string              `json:"local_path" yaml:"local_path"`
	RemotePath swiftcli.ObjectPath `json:"remote_path" yaml:"remote_path"`
	Outcome    swiftcli.Outcome    `json:"outcome" yaml:"outcome"`
	Reason     string              `json:"reason,omitempty" yaml:"reason,omitempty"`
	ETag       string              `json:"etag,omitempty" yaml:"etag,omitempty"`
	Size       int64               `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	Error      string              `json:"error,omitempty" yaml:"error,omitempty"`
	Err        error               `json:"-" yaml:"-"`
}

func (r *PutResult) fail(err error) {
	r.Outcome = swiftcli.OutcomeError
	r.Err = err
	r.Error = err.Error()
}

func (r *PutResult) skip(outcome swiftcli.Outcome, reason string) {
	r.Outcome = outcome
	r.Reason = reason
}

// GetResult is the outcome of a download.
type GetResult struct {
	RemotePath  swiftcli.ObjectPath `json:"remote_path" yaml:"remote_path"`
	LocalPath   string              `json:"local_path" yaml:"local_path"`
	ETag        string              `json:"etag,omitempty" yaml:"etag,omitempty"`
	ContentType string              `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	Size        int64               `json:"size_bytes" yaml:"size_bytes"`
}

// DeleteResult is the outcome of a delete.
type DeleteResult struct {
	Path    swiftcli.ObjectPath `json:"path" yaml:"path"`
	Deleted bool                `json:"deleted" yaml:"deleted"`
}

// StatsResult holds the account usage headers.
type StatsResult struct {
	Headers map[string]string `json:"headers" yaml:"headers"`
}

// Keys returns the header names in lexical order.
func (r *StatsResult) Keys() []string {
	return swift.SortedKeys(r.Headers)
}

// SaveResult is the outcome of saving credentials.
type SaveResult struct {
	Path    string `json:"path" yaml:"path"`
	User    string `json:"user" yaml:"user"`
	AuthURL string `json:"auth_url" yaml:"auth_url"`
}

// failed reports whether an item makes the batch exit non-zero.
func failed(o swiftcli.Outcome) bool {
	return o.IsError() || o == swiftcli.OutcomeNotFound
}

// splitNames splits a newline separated listing, dropping blank lines.
func splitNames(body []byte) []string {
	var names []string
	for _, line := range bytes.Split(body, []byte("\n")) {
		name := strings.TrimSpace(string(line))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
