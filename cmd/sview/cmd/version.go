// File: version.go
// Title: Version Command
// Description: Implements the version subcommand.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version, overridable at build time via -ldflags.
var Version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sview %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
