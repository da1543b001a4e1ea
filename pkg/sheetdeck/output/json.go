// Package output serializes converter results to JSON.
package output

import (
	"encoding/json"

	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/models"
)

// SummaryToJSON serializes a deck summary.
func SummaryToJSON(s *models.DeckSummary, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

// ReportToJSON serializes a build report.
func ReportToJSON(r *models.BuildReport, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
