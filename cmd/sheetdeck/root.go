package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/sheetdeck/sheetdeck/pkg/logging"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "sheetdeck",
	Short: "Convert two-sheet Excel workbooks into PowerPoint decks",
	Long: `sheetdeck reads a workbook whose first sheet holds deck settings
(cells A2:D2) and whose second sheet holds a data table, and emits a
pptx deck: a styled title slide, filler content slides, and a final
slide rendering the table.`,
	SilenceUsage:  true, // don't show usage on runtime errors
	SilenceErrors: true, // Execute prints errors once
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
}

// newLogger builds the run logger from the --log-level flag.
func newLogger() hclog.Logger {
	return logging.NewLogger("sheetdeck", logLevel, os.Stderr)
}
