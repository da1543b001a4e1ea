package deck

import (
	"fmt"
	"path/filepath"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/models"
)

// Summarize reopens a finished deck and describes its document
// properties and each slide. The first non-empty text on a slide
// becomes its title; the remaining texts are collected in shape order.
func Summarize(path string) (*models.DeckSummary, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}

	props, err := ReadDocProperties(path)
	if err != nil {
		return nil, err
	}

	summary := &models.DeckSummary{
		FileName:   filepath.Base(path),
		Properties: props,
	}
	for i, slide := range pres.GetAllSlides() {
		ss := models.SlideSummary{Index: i + 1}
		shapes := slide.GetShapes()
		ss.ShapeCount = len(shapes)

		for _, shape := range shapes {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				if ss.Title == "" {
					ss.Title = text
				} else {
					ss.Texts = append(ss.Texts, text)
				}
			}
		}
		summary.Slides = append(summary.Slides, ss)
	}
	summary.SlideCount = len(summary.Slides)

	return summary, nil
}
