// File: slice.go
// Title: Slice Command
// Description: Implements the slice subcommand: build a view over a text
//              or file and print a window of it.
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

var (
	sliceFile   string
	sliceOffset int
	sliceLength int
)

var sliceCmd = &cobra.Command{
	Use:   "slice [text]",
	Short: "Cut a window out of a text or file",
	Long: `Builds a shared string view over the given text (or the content of
--file) and prints the window selected by --offset and --length. Offsets
beyond the text and over-long lengths clamp instead of failing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := inputView(args, sliceFile)
		if err != nil {
			return err
		}

		offset := sliceOffset
		if !cmd.Flags().Changed("offset") {
			offset = intSetting(settingOffset, 0)
		}
		length := sliceLength
		if !cmd.Flags().Changed("length") {
			length = intSetting(settingLength, v.Len())
		}

		window := v.Substr(offset, length)
		logger.Debug("sliced",
			log.Int("offset", offset),
			log.Int("length", length),
			log.Int("window", window.Len()),
		)

		fmt.Fprintln(cmd.OutOrStdout(), window.String())
		return nil
	},
}

// inputView builds the view the subcommands operate on, from an argument
// or a file.
func inputView(args []string, file string) (sview.View, error) {
	if file != "" {
		content, err := filex.Open(file).Contents()
		if err != nil {
			return sview.View{}, err
		}
		return sview.New(content), nil
	}
	if len(args) > 0 {
		return sview.New(args[0]), nil
	}
	return sview.New(""), nil
}

func init() {
	sliceCmd.Flags().StringVarP(&sliceFile, "file", "f", "", "read the text from a file")
	sliceCmd.Flags().IntVarP(&sliceOffset, "offset", "o", 0, "window start")
	sliceCmd.Flags().IntVarP(&sliceLength, "length", "n", 0, "window length")
	rootCmd.AddCommand(sliceCmd)
}
