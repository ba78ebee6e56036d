package config

import (
	"os"

	"github.com/zpodfactory/zpodtg/internal/output"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates the value came from the config file.
	SourceConfig Source = "config"
	// SourceNone indicates the value is unset everywhere.
	SourceNone Source = "none"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key (for logging).
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source Source
}

// ResolveOptions contains the inputs for resolving one value.
type ResolveOptions struct {
	// Key is the configuration key name (for logging).
	Key string
	// FlagValue is the command-line flag value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable name to consult.
	EnvVar string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
}

// Resolve resolves a single value using precedence: flag > env > config file.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{Key: opts.Key, Source: SourceNone}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
	case os.Getenv(opts.EnvVar) != "":
		result.Value = os.Getenv(opts.EnvVar)
		result.Source = SourceEnv
	case opts.ConfigValue != "":
		result.Value = opts.ConfigValue
		result.Source = SourceConfig
	}

	return result
}

// ResolvedConfig holds all resolved configuration values.
type ResolvedConfig struct {
	// Host is the resolved zpodapi base URL.
	Host ResolvedValue
	// Token is the resolved zpodapi access token.
	Token ResolvedValue
}

// ResolveAllOptions contains flag values and the loaded config file.
type ResolveAllOptions struct {
	// HostFlag is the --zpodfactory-host flag value.
	HostFlag string
	// TokenFlag is the --zpodfactory-token flag value.
	TokenFlag string
	// Config is the loaded config file contents (may be nil).
	Config *Config
}

// ResolveAll resolves host and token using precedence flag > env > config.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	var cfgHost, cfgToken string
	if opts.Config != nil {
		cfgHost = opts.Config.Host
		cfgToken = opts.Config.Token
	}

	return &ResolvedConfig{
		Host: Resolve(ResolveOptions{
			Key:         "host",
			FlagValue:   opts.HostFlag,
			EnvVar:      "ZPODFACTORY_HOST",
			ConfigValue: cfgHost,
		}),
		Token: Resolve(ResolveOptions{
			Key:         "token",
			FlagValue:   opts.TokenFlag,
			EnvVar:      "ZPODFACTORY_TOKEN",
			ConfigValue: cfgToken,
		}),
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
// Token values are redacted.
func LogResolvedValues(resolved *ResolvedConfig) {
	output.Debug("config value resolved",
		"key", resolved.Host.Key,
		"value", resolved.Host.Value,
		"source", resolved.Host.Source,
	)
	output.Debug("config value resolved",
		"key", resolved.Token.Key,
		"value", redact(resolved.Token.Value),
		"source", resolved.Token.Source,
	)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}
