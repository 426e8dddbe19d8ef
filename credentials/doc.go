// Package credentials resolves the user, key and auth URL used for the Swift
// v1 auth handshake.
//
// Credentials come from three places, in order of precedence:
//
//  1. explicit overrides (command-line flags)
//  2. the ST_USER, ST_KEY and ST_AUTH environment variables
//  3. the persisted store, a key=value file (default ~/.swiftcli/credentials)
//
// When the overrides are complete the store is not read at all. Otherwise the
// store fills whatever fields the overrides left empty, and a field still
// missing after the merge yields swiftcli.ErrMissingCredentials.
//
// # Store Format
//
// The store holds three assignments and is written with mode 0600:
//
//	APIUSER='account:user'
//	APIKEY='secret'
//	APIURL='https://auth.example.com/auth/v1.0'
//
// Values are single-quoted so the file can also be sourced by a shell.
package credentials
