// File: concat.go
// Title: Concat Command
// Description: Implements the concat subcommand: join texts into a fresh
//              view and optionally write it to a file through a temp file.
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

	"github.com/mbertram/sview/core/log"
	"github.com/mbertram/sview/sview"
	"github.com/mbertram/sview/utils/filex"
)

var concatOut string

var concatCmd = &cobra.Command{
	Use:   "concat <text>...",
	Short: "Join texts into a fresh view",
	Long: `Concatenates the given texts into a single freshly allocated view
and prints it. With --out the result is written through a temp file that is
renamed into place, so an existing file at the target is never clobbered.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := sview.New(args[0])
		for _, arg := range args[1:] {
			result = result.ConcatString(arg)
		}

		logger.Debug("concatenated",
			log.Int("parts", len(args)),
			log.Int("length", result.Len()),
		)

		if concatOut == "" {
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		}

		tmp, err := filex.CreateTemp("sview-concat")
		if err != nil {
			return err
		}
		defer tmp.Cleanup()

		if err := tmp.Truncate(result.Bytes()); err != nil {
			return err
		}
		return tmp.Rename(concatOut)
	},
}

func init() {
	concatCmd.Flags().StringVar(&concatOut, "out", "", "write the result to a new file")
	rootCmd.AddCommand(concatCmd)
}
