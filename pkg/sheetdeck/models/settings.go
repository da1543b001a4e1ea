// Package models defines data structures shared across the converter.
package models

import "fmt"

// Settings holds the deck parameters read from the settings sheet.
// It is built once per run and never mutated afterwards.
type Settings struct {
	// SlideCount is the total number of slides to emit (>= 2).
	SlideCount int `json:"slide_count"`
	// TitleSizePt is the title slide font size in points.
	TitleSizePt int `json:"title_size_pt"`
	// TitleColor is the title slide font color.
	TitleColor RGB `json:"title_color"`
	// TextSizePt is the body font size in points.
	TextSizePt int `json:"text_size_pt"`
}

// ContentSlideCount returns the number of filler slides between the
// title slide and the results slide.
func (s Settings) ContentSlideCount() int {
	return s.SlideCount - 2
}

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	// R is the red channel (0-255).
	R uint8 `json:"r"`
	// G is the green channel (0-255).
	G uint8 `json:"g"`
	// B is the blue channel (0-255).
	B uint8 `json:"b"`
}

// Hex returns the color as six uppercase hex digits, no prefix.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the color as eight hex digits with a fully opaque
// alpha channel, the format presentation shapes expect.
func (c RGB) ARGB() string {
	return "FF" + c.Hex()
}

// String returns the color in "#RRGGBB" form.
func (c RGB) String() string {
	return "#" + c.Hex()
}
