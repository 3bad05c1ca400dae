// File: root.go
// Title: Root Command
// Description: Defines the root cobra command, global flags, logger setup,
//              and loading of the settings file.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbertram/sview/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	logger = log.New()
)

var rootCmd = &cobra.Command{
	Use:   "sview",
	Short: "sview - shared string view inspection tool",
	Long: `sview slices, concatenates and hashes text through the shared
string view library.

Commands:
  slice    - cut a window out of a text or file
  concat   - join texts into a fresh view
  hash     - print the content hash of a text or file
  version  - print version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.DefaultLevel()
		if verbose {
			level = log.LevelDebug
		}
		logger = logger.WithLevel(level).WithName("sview")
		if logFormat == "text" {
			logger = logger.WithFormatter(log.NewTextFormatter())
		}
		return loadSettings(cfgFile)
	},
}

// Execute runs the root command, logging any failure.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.LogError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log output format (json or text)")
}
