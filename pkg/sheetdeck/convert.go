package sheetdeck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/deck"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/models"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/workbook"
	"github.com/xuri/excelize/v2"
)

// Convert reads the workbook at inputPath and writes the deck to
// outputPath, overwriting it if present. Nothing is written when
// loading or validation fails.
func Convert(inputPath, outputPath string, opts Options) (*models.BuildReport, error) {
	log := opts.logger()

	settings, table, err := load(inputPath, opts)
	if err != nil {
		return nil, err
	}

	data, report, err := deck.Build(settings, table, deck.Config{
		ContentLayout: opts.ContentLayout,
		Logger:        log,
	})
	if err != nil {
		return nil, fmt.Errorf("build deck: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write deck: %w", err)
	}
	report.OutputPath = outputPath

	log.Info("deck written",
		"path", outputPath,
		"slides", report.SlideCount,
		"table_rows", report.TableRows,
		"table_cols", report.TableCols,
		"title_only_fallbacks", report.TitleOnlyCount())
	return report, nil
}

// Validate loads the workbook and runs the settings and table checks
// without writing anything.
func Validate(inputPath string, opts Options) (models.Settings, *models.Table, error) {
	return load(inputPath, opts)
}

// DefaultOutputPath derives the deck path from the input path by
// swapping its extension for ".pptx".
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".pptx"
}

// load opens the workbook and reads both sheets. The file handle is
// released before load returns.
func load(path string, opts Options) (models.Settings, *models.Table, error) {
	log := opts.logger()

	fallback, err := opts.fallbackColor()
	if err != nil {
		return models.Settings{}, nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return models.Settings{}, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Debug("open workbook failed", "path", path, "error", err)
		return models.Settings{}, nil, fmt.Errorf("%s: %w", path, ErrInvalidFormat)
	}
	defer f.Close()

	settingsSheet, dataSheet, err := workbook.SheetPair(f)
	if err != nil {
		return models.Settings{}, nil, err
	}
	log.Debug("workbook loaded",
		"path", path, "settings_sheet", settingsSheet, "data_sheet", dataSheet)

	settings, err := workbook.ReadSettings(f, settingsSheet, fallback, log)
	if err != nil {
		return models.Settings{}, nil, fmt.Errorf("read settings: %w", err)
	}

	table, err := workbook.ReadTable(f, dataSheet)
	if err != nil {
		return models.Settings{}, nil, fmt.Errorf("read data table: %w", err)
	}

	return settings, table, nil
}
