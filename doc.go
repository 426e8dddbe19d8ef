// Package swiftcli holds the domain types shared by the swiftcli command-line
// client for OpenStack Swift compatible object storage.
//
// A run of the client resolves Credentials, exchanges them for a Session via
// the v1 auth handshake, and then issues one HTTP request per transfer
// operation against the session's storage URL. The Session is a plain value
// passed to every operation; nothing is held in package-level state.
//
// # Key Components
//
//   - Credentials / Session: the auth input and output
//   - ObjectPath: normalized "/container" or "/container/object" paths
//   - Outcome: per-item classification of put and list decisions
//   - ExitCode: maps the sentinel errors to the documented process exit codes
//
// See the credentials package for resolution and persistence, the swift
// package for the HTTP protocol, and the action package for the per-action
// policy.
package swiftcli
