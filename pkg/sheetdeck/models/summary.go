package models

// DocProperties are the document properties stamped on a deck.
type DocProperties struct {
	// Title is the presentation title property.
	Title string `json:"title,omitempty"`
	// Creator is the application or author the deck is attributed to.
	Creator string `json:"creator,omitempty"`
}

// SlideSummary describes one slide of an existing deck.
type SlideSummary struct {
	// Index is the 1-based slide position.
	Index int `json:"index"`
	// Title is the first non-empty text found on the slide.
	Title string `json:"title,omitempty"`
	// ShapeCount is the number of shapes on the slide.
	ShapeCount int `json:"shape_count"`
	// Texts holds the remaining non-empty paragraph texts (optional).
	Texts []string `json:"texts,omitempty"`
}

// DeckSummary describes an existing presentation file.
type DeckSummary struct {
	// FileName is the deck file name (no path).
	FileName string `json:"file_name"`
	// Properties holds the deck's document properties.
	Properties DocProperties `json:"properties"`
	// SlideCount is the number of slides in the deck.
	SlideCount int `json:"slide_count"`
	// Slides maps each slide to its summary, in deck order.
	Slides []SlideSummary `json:"slides"`
}
