package deck

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/hashicorp/go-hclog"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/models"
)

// Fixed deck literals.
const (
	deckTitle    = "Presentation"
	resultsTitle = "Final Results"
	contentBody  = "Content goes here…"
	footnoteText = "* The values are estimated."
	deckCreator  = "sheetdeck"
)

// Deck furniture styling.
const (
	headingSizePt   = 28
	tableHeadSizePt = 11
	tableCellSizePt = 10

	headingColor   = "FF1E40AF"
	tableHeadFill  = "FF3B82F6"
	tableCellColor = "FF334155"
	rowFillEven    = "FFF8FAFC"
	rowFillOdd     = "FFF1F5F9"
)

// Config adjusts how a deck is built.
type Config struct {
	// ContentLayout selects the scaffold for content slides.
	// Empty means LayoutTitleAndBody.
	ContentLayout Layout
	// Logger receives build progress. Nil disables logging.
	Logger hclog.Logger
}

func (c Config) contentLayout() (Layout, error) {
	switch c.ContentLayout {
	case "":
		return LayoutTitleAndBody, nil
	case LayoutTitleOnly, LayoutTitleAndBody:
		return c.ContentLayout, nil
	default:
		return "", fmt.Errorf("unknown content layout: %q", c.ContentLayout)
	}
}

func (c Config) logger() hclog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return hclog.NewNullLogger()
}

// Build renders the deck for the given settings and table and returns
// the pptx bytes together with a report of per-slide outcomes. Slides
// are emitted in order: title, content fillers, results.
func Build(settings models.Settings, table *models.Table, cfg Config) ([]byte, *models.BuildReport, error) {
	if settings.SlideCount < 2 {
		return nil, nil, fmt.Errorf("slide count must be at least 2, got %d", settings.SlideCount)
	}
	layout, err := cfg.contentLayout()
	if err != nil {
		return nil, nil, err
	}
	log := cfg.logger()

	p := ppt.New()
	p.GetDocumentProperties().Title = deckTitle
	p.GetDocumentProperties().Creator = deckCreator

	report := &models.BuildReport{
		SlideCount: settings.SlideCount,
		TableRows:  table.RowCount(),
		TableCols:  table.ColCount(),
	}

	addTitleSlide(p.GetActiveSlide(), settings)
	report.Slides = append(report.Slides, models.SlideOutcome{
		Index: 1, Role: models.RoleTitle, Title: deckTitle,
	})

	for i := 2; i < settings.SlideCount; i++ {
		title := fmt.Sprintf("Slide %d", i-1)
		outcome := models.SlideOutcome{Index: i, Role: models.RoleContent, Title: title}

		slide := p.CreateSlide()
		addSlideTitle(slide, title)
		if body, ok := bodyRegion(layout); ok {
			addBodyText(slide, body, settings.TextSizePt)
		} else {
			outcome.TitleOnly = true
			outcome.Note = fmt.Sprintf("layout %q has no body region", layout)
			log.Warn("content slide emitted title-only", "slide", i, "layout", string(layout))
		}
		report.Slides = append(report.Slides, outcome)
	}

	final := p.CreateSlide()
	addSlideTitle(final, resultsTitle)
	addTable(final, table, settings)
	report.Slides = append(report.Slides, models.SlideOutcome{
		Index: settings.SlideCount, Role: models.RoleResults, Title: resultsTitle,
	})

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, nil, fmt.Errorf("create pptx writer: %w", err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, nil, fmt.Errorf("write pptx: %w", err)
	}

	log.Debug("deck assembled",
		"slides", settings.SlideCount, "table_rows", table.RowCount(), "table_cols", table.ColCount())
	return buf.Bytes(), report, nil
}

// solidFill creates a solid fill.
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// alignCenter sets paragraph alignment to center.
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// placeShape positions a rich text shape at a region.
func placeShape(shape *ppt.RichTextShape, r region) {
	shape.SetOffsetX(inchesToEMU(r.left)).SetOffsetY(inchesToEMU(r.top))
	shape.SetWidth(inchesToEMU(r.width)).SetHeight(inchesToEMU(r.height))
}

// addTitleSlide renders the opening slide: the fixed deck title styled
// from the settings, nothing else.
func addTitleSlide(slide *ppt.Slide, settings models.Settings) {
	shape := slide.CreateRichTextShape()
	placeShape(shape, titleRegion())
	tr := shape.CreateTextRun(deckTitle)
	tr.GetFont().SetSize(settings.TitleSizePt).SetColor(ppt.NewColor(settings.TitleColor.ARGB()))
}

// addSlideTitle renders the heading every later slide carries.
func addSlideTitle(slide *ppt.Slide, title string) {
	shape := slide.CreateRichTextShape()
	placeShape(shape, titleRegion())
	tr := shape.CreateTextRun(title)
	tr.GetFont().SetSize(headingSizePt).SetBold(true).SetColor(ppt.NewColor(headingColor))
}

// addBodyText renders the filler body of a content slide.
func addBodyText(slide *ppt.Slide, r region, sizePt int) {
	shape := slide.CreateRichTextShape()
	placeShape(shape, r)
	tr := shape.CreateTextRun(contentBody)
	tr.GetFont().SetSize(sizePt)
}

// addTable renders the data table as a grid of rich text shapes, one
// per cell, plus the footnote beneath it. The first row is styled as a
// header and later rows alternate fills; cell content is unchanged.
func addTable(slide *ppt.Slide, table *models.Table, settings models.Settings) {
	rows := table.RowCount()
	cols := table.ColCount()

	width := slideWidthIn - 2*tableMarginIn
	height := tableHeightIn(rows)
	rowHeight := height / float64(rows)
	colWidth := width / float64(cols)

	for r, rowCells := range table.Cells {
		top := tableTopIn + rowHeight*float64(r)
		for c, value := range rowCells {
			cell := slide.CreateRichTextShape()
			placeShape(cell, region{
				left:   tableMarginIn + colWidth*float64(c),
				top:    top,
				width:  colWidth,
				height: rowHeight,
			})

			switch {
			case r == 0:
				cell.SetFill(solidFill(tableHeadFill))
			case r%2 == 1:
				cell.SetFill(solidFill(rowFillOdd))
			default:
				cell.SetFill(solidFill(rowFillEven))
			}

			// Absent values stay blank, never a placeholder word.
			if value == "" {
				continue
			}
			tr := cell.CreateTextRun(value)
			if r == 0 {
				tr.GetFont().SetSize(tableHeadSizePt).SetBold(true).SetColor(ppt.ColorWhite)
			} else {
				tr.GetFont().SetSize(tableCellSizePt).SetColor(ppt.NewColor(tableCellColor))
			}
			alignCenter(cell.GetActiveParagraph())
		}
	}

	footnote := slide.CreateRichTextShape()
	placeShape(footnote, region{
		left:   tableMarginIn,
		top:    footnoteTopIn(height),
		width:  width,
		height: footnoteHeightIn,
	})
	tr := footnote.CreateTextRun(footnoteText)
	tr.GetFont().SetSize(footnoteSizePt(settings.TextSizePt))
}
