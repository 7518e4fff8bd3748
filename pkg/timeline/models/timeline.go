package models

// TimelineEntry represents one week of the timeline with its photos.
type TimelineEntry struct {
	// Week is the week number (1-based).
	Week int `json:"week"`
	// Start is the ISO start date, raw text, or nil.
	Start *string `json:"start"`
	// End is the ISO end date, raw text, or nil.
	End *string `json:"end"`
	// Comment is the week comment or nil.
	Comment *string `json:"comment"`
	// Photos lists relative photo paths, sorted case-insensitively.
	Photos []string `json:"photos"`
}

// Document is the top-level timeline file.
type Document struct {
	// GeneratedAt is the UTC generation timestamp (YYYY-MM-DDTHH:MM:SSZ).
	GeneratedAt string `json:"generatedAt"`
	// Pre holds the entries of the "Pre" sheet.
	Pre []TimelineEntry `json:"pre"`
	// Post holds the entries of the "Post" sheet.
	Post []TimelineEntry `json:"post"`
}
