package models

// SlideRole identifies what a slide in the deck is for.
type SlideRole string

const (
	// RoleTitle is the opening title slide.
	RoleTitle SlideRole = "title"
	// RoleContent is a filler content slide.
	RoleContent SlideRole = "content"
	// RoleResults is the final slide carrying the data table.
	RoleResults SlideRole = "results"
)

// SlideOutcome records how a single slide was emitted.
type SlideOutcome struct {
	// Index is the 1-based position of the slide in the deck.
	Index int `json:"index"`
	// Role identifies the slide kind.
	Role SlideRole `json:"role"`
	// Title is the slide title text.
	Title string `json:"title"`
	// TitleOnly is true when a content slide was emitted without its
	// body because the active layout has no body region.
	TitleOnly bool `json:"title_only,omitempty"`
	// Note carries extra detail for degraded outcomes.
	Note string `json:"note,omitempty"`
}

// BuildReport summarizes one conversion run.
type BuildReport struct {
	// SlideCount is the number of slides written.
	SlideCount int `json:"slide_count"`
	// Slides holds one outcome per slide, in deck order.
	Slides []SlideOutcome `json:"slides"`
	// TableRows is the rendered table row count.
	TableRows int `json:"table_rows"`
	// TableCols is the rendered table column count.
	TableCols int `json:"table_cols"`
	// OutputPath is where the deck was written. Empty until persisted.
	OutputPath string `json:"output_path,omitempty"`
}

// TitleOnlyCount returns how many content slides fell back to
// title-only output.
func (r *BuildReport) TitleOnlyCount() int {
	n := 0
	for _, s := range r.Slides {
		if s.TitleOnly {
			n++
		}
	}
	return n
}
