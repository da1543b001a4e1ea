package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/models"
	"github.com/xuri/excelize/v2"
)

// DefaultColorHex is the fallback title color applied when the color
// cell is absent or malformed.
const DefaultColorHex = "1F4E79"

// Settings cells, fixed on row 2 of the settings sheet.
const (
	cellSlideCount = "A2"
	cellTitleSize  = "B2"
	cellTitleColor = "C2"
	cellTextSize   = "D2"
)

// ReadSettings reads the four control cells from row 2 of the settings
// sheet. A missing or malformed color cell falls back to fallback
// rather than failing; the other three cells must coerce to integers.
func ReadSettings(f *excelize.File, sheetName string, fallback models.RGB, log hclog.Logger) (models.Settings, error) {
	slideCount, err := readIntCell(f, sheetName, cellSlideCount)
	if err != nil {
		return models.Settings{}, err
	}
	titleSize, err := readIntCell(f, sheetName, cellTitleSize)
	if err != nil {
		return models.Settings{}, err
	}
	rawColor, err := f.GetCellValue(sheetName, cellTitleColor)
	if err != nil {
		return models.Settings{}, fmt.Errorf("read cell %s: %w", cellTitleColor, err)
	}
	textSize, err := readIntCell(f, sheetName, cellTextSize)
	if err != nil {
		return models.Settings{}, err
	}

	if slideCount < 2 {
		return models.Settings{}, NewValidationError("slide_count",
			fmt.Sprintf("cell %s holds %d, need at least 2 (title slide + final slide)", cellSlideCount, slideCount),
			ErrSlideCountRange)
	}

	color, ok := ParseColor(rawColor)
	if !ok {
		color = fallback
		log.Debug("title color cell missing or malformed, using fallback",
			"cell", cellTitleColor, "value", rawColor, "fallback", fallback.String())
	}

	return models.Settings{
		SlideCount:  slideCount,
		TitleSizePt: titleSize,
		TitleColor:  color,
		TextSizePt:  textSize,
	}, nil
}

// ParseColor parses a "RRGGBB" or "#RRGGBB" color string,
// case-insensitive. ok is false when the value is absent or not
// exactly six hex digits.
func ParseColor(raw string) (models.RGB, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 || !isHexDigits(s) {
		return models.RGB{}, false
	}
	v, _ := strconv.ParseUint(s, 16, 32)
	return models.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func readIntCell(f *excelize.File, sheetName, cell string) (int, error) {
	raw, err := f.GetCellValue(sheetName, cell)
	if err != nil {
		return 0, fmt.Errorf("read cell %s: %w", cell, err)
	}
	return coerceInt(sheetName, cell, raw)
}

// coerceInt converts a cell's display string to an integer. Integer
// text parses directly, real-number text truncates toward zero, and
// anything else (including an empty cell) is a CoercionError.
func coerceInt(sheetName, cell, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	fv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewCoercionError(sheetName, cell, raw, err)
	}
	return int(fv), nil
}
