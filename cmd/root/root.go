// Package root contains the root command for the application
package root

import (
	"crednorm/experian-report/internal/config"
	"crednorm/experian-report/internal/experian"
	"crednorm/experian-report/internal/fileutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "experian-report",
		Short: "A CLI tool to parse Experian credit report XML files into normalized JSON.",
		Long: `experian-report is a CLI tool that parses Experian credit bureau XML reports
into a normalized JSON document with translated codes, coerced numbers and
formatted dates. It can also export parsed reports and serve an HTTP API.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to experian-report!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all packages
			experian.SetLogger(Log)
			fileutils.SetLogger(Log)
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string

	// Specific export command flags
	Format string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before parsing")
}
