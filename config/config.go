package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SWIFTCLI"

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct for swiftcli.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Transfer TransferConfig `mapstructure:"transfer"`
	Output   OutputConfig   `mapstructure:"output"`
	Store    StoreConfig    `mapstructure:"store"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// HTTPConfig holds HTTP client configuration.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"` // 0 means no timeout
}

// TransferConfig holds upload configuration.
type TransferConfig struct {
	Jobs int `mapstructure:"jobs" validate:"min=1,max=64"`
}

// OutputConfig holds result formatting configuration.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=human json yaml"`
	Quiet  bool   `mapstructure:"quiet"`
}

// StoreConfig holds the credential store location.
type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"timeout":    "http.timeout",
	"jobs":       "transfer.jobs",
	"output":     "output.format",
	"quiet":      "output.quiet",
	"store":      "store.path",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey, ok := flagToViperKey[f.Name]
		if !ok {
			return
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("http.timeout", 0) // no timeout

	v.SetDefault("transfer.jobs", 1)

	v.SetDefault("output.format", "human")
	v.SetDefault("output.quiet", false)

	v.SetDefault("store.path", "~/.swiftcli/credentials")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.swiftcli")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
