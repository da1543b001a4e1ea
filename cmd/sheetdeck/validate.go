package main

import (
	"fmt"

	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [input.xlsx]",
	Short: "Check a workbook without writing a deck",
	Long: `Loads the workbook and runs the sheet, settings, and data checks that
convert would run, writing nothing. Exits nonzero when a check fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts := sheetdeck.DefaultOptions()
	opts.Logger = newLogger()

	settings, table, err := sheetdeck.Validate(args[0], opts)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("workbook is valid: %d slides, %dx%d table, title color %s\n",
		settings.SlideCount, table.RowCount(), table.ColCount(), settings.TitleColor)
	return nil
}
