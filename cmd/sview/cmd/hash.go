// File: hash.go
// Title: Hash Command
// Description: Implements the hash subcommand: print the content hash of a
//              text, file, or window thereof.
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
)

var (
	hashFile   string
	hashOffset int
	hashLength int
)

var hashCmd = &cobra.Command{
	Use:   "hash [text]",
	Short: "Print the content hash of a text or file",
	Long: `Prints the 64-bit content hash of the given text (or the content of
--file), optionally restricted to a window. The hash depends only on the
visible characters, so equal text always hashes equal regardless of where
it came from.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := inputView(args, hashFile)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("offset") || cmd.Flags().Changed("length") {
			length := hashLength
			if !cmd.Flags().Changed("length") {
				length = v.Len()
			}
			v = v.Substr(hashOffset, length)
		}

		sum := v.Hash()
		logger.Debug("hashed", log.Int("length", v.Len()), log.Uint64("hash", sum))

		fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", sum)
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVarP(&hashFile, "file", "f", "", "read the text from a file")
	hashCmd.Flags().IntVarP(&hashOffset, "offset", "o", 0, "window start")
	hashCmd.Flags().IntVarP(&hashLength, "length", "n", 0, "window length")
	rootCmd.AddCommand(hashCmd)
}
