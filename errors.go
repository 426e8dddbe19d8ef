package swiftcli

import "errors"

var (
	// ErrMissingDependency is reserved for a missing runtime dependency.
	ErrMissingDependency = errors.New("missing dependency")
	// ErrMissingCredentials is returned when user, key or auth URL cannot be resolved.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrAuthenticationFailed is returned when the auth handshake does not return 200.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrInvalidArguments is returned when an action gets the wrong arguments.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrTransport is returned when the HTTP layer fails before a status is received.
	ErrTransport = errors.New("http transport error")
	// ErrUnexpectedStatus is returned when the service answers with a status the action does not handle.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// Process exit codes.
const (
	ExitOK                 = 0
	ExitUndefined          = 1
	ExitMissingDependency  = 2
	ExitInvalidArguments   = 3
	ExitMissingCredentials = 4
	ExitAuthFailed         = 5
)

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMissingDependency):
		return ExitMissingDependency
	case errors.Is(err, ErrInvalidArguments):
		return ExitInvalidArguments
	case errors.Is(err, ErrMissingCredentials):
		return ExitMissingCredentials
	case errors.Is(err, ErrAuthenticationFailed):
		return ExitAuthFailed
	default:
		return ExitUndefined
	}
}
