// Package output serializes timeline documents.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/afero"
	"github.com/ukaji3/timeline-go/pkg/timeline/models"
)

// ToJSON serializes the document. Non-ASCII and HTML characters are kept
// literal; pretty output is indented with two spaces.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(normalize(doc)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile writes the document to path, replacing any existing file.
func WriteFile(fs afero.Fs, path string, doc *models.Document, pretty bool) error {
	data, err := ToJSON(doc, pretty)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0644)
}

// normalize replaces nil lists so they encode as [] rather than null.
func normalize(doc *models.Document) *models.Document {
	out := *doc
	out.Pre = normalizeEntries(doc.Pre)
	out.Post = normalizeEntries(doc.Post)
	return &out
}

func normalizeEntries(entries []models.TimelineEntry) []models.TimelineEntry {
	out := make([]models.TimelineEntry, len(entries))
	for i, e := range entries {
		if e.Photos == nil {
			e.Photos = []string{}
		}
		out[i] = e
	}
	return out
}
