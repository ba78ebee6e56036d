// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the zpodtg configuration, loaded from
// ~/.zpodtg/config.yaml (overridable via --config / ZPODTG_CONFIG).
type Config struct {
	// Host is the zpodapi base URL, e.g. http://zpodfactory.example.com:8000.
	// Env: ZPODFACTORY_HOST
	Host string `mapstructure:"host"`

	// Token is the zpodapi access token.
	// Env: ZPODFACTORY_TOKEN
	Token string `mapstructure:"token"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}
