// File: main.go
// Title: sview CLI Entry Point
// Description: Entry point for the sview command line tool.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/mbertram/sview/cmd/sview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
