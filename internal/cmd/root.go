// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zpodfactory/zpodtg/internal/config"
	"github.com/zpodfactory/zpodtg/internal/output"
)

var (
	// Global flags
	hostFlag       string
	tokenFlag      string
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig   *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the zpodtg CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zpodtg",
		Short:         "Render templates with zPod metadata from the zpodapi",
		Long: `zpodtg fetches zPod metadata from a zpodfactory API and renders
Jinja2 templates against it, producing configuration artifacts
(scripts, inventory files) for downstream automation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&hostFlag, "zpodfactory-host", "",
		"zpodapi host URL, e.g. http://zpodfactory.fqdn.com:8000 (env: ZPODFACTORY_HOST)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "zpodfactory-token", "",
		"zpodapi access token (env: ZPODFACTORY_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Path to config file (env: ZPODTG_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false,
		"Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// A broken config file should not block commands that get
		// everything from flags or the environment.
		output.Debug("config load error", "error", err)
	}
	loadedConfig = cfg

	resolvedConfig = config.ResolveAll(config.ResolveAllOptions{
		HostFlag:  hostFlag,
		TokenFlag: tokenFlag,
		Config:    loadedConfig,
	})

	// Timestamps precedence: flag (if explicitly set) > config > default (off)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig != nil && loadedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues(resolvedConfig)
	}

	return nil
}

// GetHost returns the resolved zpodapi host.
func GetHost() string {
	if resolvedConfig != nil {
		return resolvedConfig.Host.Value
	}
	return hostFlag
}

// GetToken returns the resolved zpodapi access token.
func GetToken() string {
	if resolvedConfig != nil {
		return resolvedConfig.Token.Value
	}
	return tokenFlag
}
