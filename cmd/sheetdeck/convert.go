package main

import (
	"fmt"

	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/output"
	"github.com/spf13/cobra"
)

var (
	outputPath   string
	defaultColor string
	reportJSON   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [input.xlsx]",
	Short: "Convert a workbook into a deck",
	Long: `Reads deck settings from row 2 of the first sheet and the data table
from the second sheet, then writes the deck next to the input unless
-o names another path. An existing output file is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input path with .pptx extension)")
	convertCmd.Flags().StringVar(&defaultColor, "default-color", "", "Fallback title color when cell C2 is missing or malformed")
	convertCmd.Flags().BoolVar(&reportJSON, "report", false, "Print the build report as JSON")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	out := outputPath
	if out == "" {
		out = sheetdeck.DefaultOutputPath(inputPath)
	}

	opts := sheetdeck.DefaultOptions()
	opts.Logger = newLogger()
	if defaultColor != "" {
		opts.DefaultColor = defaultColor
	}

	report, err := sheetdeck.Convert(inputPath, out, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if reportJSON {
		jsonData, err := output.ReportToJSON(report, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Printf("wrote %s: %d slides, %dx%d table\n",
		report.OutputPath, report.SlideCount, report.TableRows, report.TableCols)
	if n := report.TitleOnlyCount(); n > 0 {
		fmt.Printf("%d content slide(s) emitted title-only\n", n)
	}
	return nil
}
