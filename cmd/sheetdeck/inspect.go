package main

import (
	"fmt"

	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/deck"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/output"
	"github.com/spf13/cobra"
)

var pretty bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.pptx]",
	Short: "Print a JSON summary of an existing deck",
	Long: `Reopens a finished deck and prints its document properties, slide
count, and per-slide titles and shape counts as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	summary, err := deck.Summarize(args[0])
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.SummaryToJSON(summary, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}
