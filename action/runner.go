package action

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/sagarc03/swiftcli"
	"github.com/sagarc03/swiftcli/swift"
)

// ErrPartialFailure is returned by batch actions after all items were
// reported and at least one of them failed.
var ErrPartialFailure = errors.New("one or more items failed")

// Storage is the set of transfer operations the actions need.
// *swift.Client implements it.
type Storage interface {
	GetInfo(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) (*swift.ResponseMetadata, error)
	CheckExist(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) (bool, error)
	List(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) ([]byte, *swift.ResponseMetadata, error)
	GetObject(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath, dst io.Writer) (*swift.ResponseMetadata, int64, error)
	PutObject(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath, localFile string) (*swift.ResponseMetadata, error)
	PutDirectory(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) (*swift.ResponseMetadata, error)
	DeleteObject(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath) (*swift.ResponseMetadata, error)
	Account(ctx context.Context, sess swiftcli.Session) (*swift.ResponseMetadata, error)
	Identical(ctx context.Context, sess swiftcli.Session, path swiftcli.ObjectPath, localFile string) (bool, error)
}

// Runner executes actions against one authenticated session.
type Runner struct {
	storage   Storage
	sess      swiftcli.Session
	formatter Formatter
	stdout    io.Writer
	stderr    io.Writer
	logger    *slog.Logger
	overwrite bool
	jobs      int
}

// Option configures a Runner.
type Option func(*Runner)

// WithFormatter sets the result formatter. The default is a HumanFormatter.
func WithFormatter(f Formatter) Option {
	return func(r *Runner) {
		r.formatter = f
	}
}

// WithOutput sets the result and diagnostic streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithOverwrite enables overwrite mode (-o).
func WithOverwrite(overwrite bool) Option {
	return func(r *Runner) {
		r.overwrite = overwrite
	}
}

// WithJobs sets how many files put uploads concurrently. Values below 1 mean 1.
func WithJobs(jobs int) Option {
	return func(r *Runner) {
		r.jobs = jobs
	}
}

// New creates a Runner. storage may be nil for actions that do not talk to
// the service (save).
func New(storage Storage, sess swiftcli.Session, opts ...Option) *Runner {
	r := &Runner{
		storage:   storage,
		sess:      sess,
		formatter: &HumanFormatter{},
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		logger:    slog.Default(),
		jobs:      1,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.jobs < 1 {
		r.jobs = 1
	}

	return r
}
