// Package root contains the root command for the application
package root

import (
	"fjacquet/autokit/internal/config"
	"fjacquet/autokit/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "autokit",
		Short: "A CLI toolkit to organize files, scrape web pages and send email notifications.",
		Long: `autokit is a collection of small automation utilities:
organize moves files into folders by extension, scrape extracts data
from a web page, and notify sends a templated email when a condition holds.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to autokit!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to packages with a default one
			store.SetLogger(Log)
		},
	}

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
