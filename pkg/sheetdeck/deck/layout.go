// Package deck builds pptx decks from converter inputs.
package deck

import "math"

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
// Presentation shapes are positioned and sized in EMUs.
const EMUPerInch = 914400

// Slide canvas in inches, the classic 4:3 deck.
const (
	slideWidthIn  = 10.0
	slideHeightIn = 7.5
)

// Title and body regions in inches.
const (
	titleLeftIn   = 0.5
	titleTopIn    = 0.3
	titleWidthIn  = 9.0
	titleHeightIn = 1.25

	bodyLeftIn   = 0.5
	bodyTopIn    = 1.75
	bodyWidthIn  = 9.0
	bodyHeightIn = 4.95
)

// Results table geometry in inches.
const (
	tableMarginIn    = 0.7
	tableTopIn       = 1.6
	tableBottomIn    = 1.0
	tableRowHeightIn = 0.35

	footnoteGapIn    = 0.2
	footnoteHeightIn = 0.4
)

// minFootnoteSizePt floors the footnote font size.
const minFootnoteSizePt = 8

// inchesToEMU converts inches to EMUs, rounded to the nearest unit.
func inchesToEMU(in float64) int64 {
	return int64(math.Round(in * EMUPerInch))
}

// tableHeightIn returns the table height for a row count: 0.35in per
// row, clamped so the table never crosses the bottom margin. Excess
// rows compress instead of overflowing the canvas.
func tableHeightIn(rows int) float64 {
	maxHeight := slideHeightIn - tableTopIn - tableBottomIn
	desired := tableRowHeightIn * float64(rows)
	if desired > maxHeight {
		return maxHeight
	}
	return desired
}

// footnoteTopIn returns the footnote offset below a table of the given
// height.
func footnoteTopIn(tableHeight float64) float64 {
	return tableTopIn + tableHeight + footnoteGapIn
}

// footnoteSizePt derives the footnote font size from the body size,
// floored at 8pt.
func footnoteSizePt(textSizePt int) int {
	size := textSizePt - 2
	if size < minFootnoteSizePt {
		return minFootnoteSizePt
	}
	return size
}

// Layout selects the scaffold a content slide is built on.
type Layout string

const (
	// LayoutTitleOnly carries a title region and nothing else.
	LayoutTitleOnly Layout = "title_only"
	// LayoutTitleAndBody carries a title region and a body region.
	LayoutTitleAndBody Layout = "title_and_body"
)

// region is a shape rectangle in inches.
type region struct {
	left, top, width, height float64
}

func titleRegion() region {
	return region{left: titleLeftIn, top: titleTopIn, width: titleWidthIn, height: titleHeightIn}
}

// bodyRegion returns the body rectangle of a layout. ok is false when
// the layout has no body region.
func bodyRegion(layout Layout) (region, bool) {
	if layout == LayoutTitleAndBody {
		return region{left: bodyLeftIn, top: bodyTopIn, width: bodyWidthIn, height: bodyHeightIn}, true
	}
	return region{}, false
}
