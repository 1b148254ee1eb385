package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/open-edge-platform/vm-box-publisher/internal/utils/config"
	"github.com/open-edge-platform/vm-box-publisher/internal/utils/logger"
)

// Global command flags
var (
	configFile string // Optional YAML config file path
	logLevel   string // Explicit log level, wins over everything
	verbose    bool   // Shorthand for --log-level debug
)

// loadedConfig holds the config resolved by the logging hook for the
// executing command.
var loadedConfig *config.GlobalConfig

// createRootCommand creates the box-publisher root command
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "box-publisher",
		Short: "packages a VM image and updates its box version index",
		Long: `box-publisher exports a local virtual machine into a versioned
box artifact, computes its checksum, merges the new version into any
existing remote metadata.json index, and writes the merged index next to
the artifact. Uploading both files to the target URL is a separate,
manual step.`,
		SilenceUsage: true,

		RunE: executePublish,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"Enable debug logging (same as --log-level debug)")

	addPublishFlags(rootCmd)
	attachLoggingHook(rootCmd)
	return rootCmd
}

// flagChanged reports whether the named flag was set on the command line.
func flagChanged(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

// resolveRequestedLogLevel returns the level requested on the command line,
// or empty when the config file (or default) should decide.
func resolveRequestedLogLevel(cmd *cobra.Command) string {
	if logLevel != "" {
		return logLevel
	}
	if cmd != nil && flagChanged(cmd.Flags(), "verbose") {
		return "debug"
	}
	return ""
}

// attachLoggingHook wires config loading and logger setup to run before the
// command body, so required-flag failures still happen first and without
// side effects.
func attachLoggingHook(cmd *cobra.Command) {
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		loadedConfig = cfg

		level := resolveRequestedLogLevel(cmd)
		if level == "" {
			level = cfg.Logging.Level
		}
		return logger.Init(level)
	}
}

func main() {
	defer logger.Sync()
	if err := createRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
