// Package config provides settings loading and validation for swiftcli.
//
// Settings cover how the client behaves (logging, HTTP timeout, upload
// parallelism, output format, credential store location). Credentials
// themselves live in the credential store, see package credentials.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s): --config, or $HOME/.swiftcli/config.yaml
//  3. Environment variables (SWIFTCLI_ prefix)
//  4. CLI flags that were explicitly set
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx = config.WithContext(ctx, cfg)
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All keys map to environment variables with the SWIFTCLI_ prefix:
//   - log.level → SWIFTCLI_LOG_LEVEL
//   - http.timeout → SWIFTCLI_HTTP_TIMEOUT
//   - transfer.jobs → SWIFTCLI_TRANSFER_JOBS
//   - output.format → SWIFTCLI_OUTPUT_FORMAT
//   - store.path → SWIFTCLI_STORE_PATH
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Log level must be debug, info, warn, or error
//   - Log format must be text or json
//   - Jobs must be 1-64
//   - Output format must be human, json, or yaml
package config
