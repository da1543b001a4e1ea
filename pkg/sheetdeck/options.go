// Package sheetdeck converts two-sheet xlsx workbooks into pptx decks.
package sheetdeck

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/deck"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/models"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/workbook"
)

// Options configures a conversion run.
type Options struct {
	// DefaultColor is the fallback title color applied when the color
	// cell is absent or malformed. Accepts "RRGGBB" or "#RRGGBB".
	// Empty means workbook.DefaultColorHex.
	DefaultColor string
	// ContentLayout selects the scaffold for content slides.
	// Empty means deck.LayoutTitleAndBody.
	ContentLayout deck.Layout
	// Logger receives run progress. Nil disables logging.
	Logger hclog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		DefaultColor: workbook.DefaultColorHex,
	}
}

// fallbackColor resolves the lenient-default color. A malformed
// DefaultColor is a configuration error, unlike a malformed color cell.
func (o Options) fallbackColor() (models.RGB, error) {
	s := o.DefaultColor
	if s == "" {
		s = workbook.DefaultColorHex
	}
	rgb, ok := workbook.ParseColor(s)
	if !ok {
		return models.RGB{}, fmt.Errorf("invalid default color %q", o.DefaultColor)
	}
	return rgb, nil
}

func (o Options) logger() hclog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return hclog.NewNullLogger()
}
