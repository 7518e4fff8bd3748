// Package models defines data structures for the weekly timeline.
package models

// RawRecord represents one parsed spreadsheet row before photos are attached.
type RawRecord struct {
	// Week is the week number (1-based).
	Week int `json:"week"`
	// Start is the ISO date (YYYY-MM-DD) or the raw cell text when no format matched.
	Start *string `json:"start"`
	// End is the ISO date (YYYY-MM-DD) or the raw cell text when no format matched.
	End *string `json:"end"`
	// Comment is the free text comment of the week.
	Comment *string `json:"comment"`
}
