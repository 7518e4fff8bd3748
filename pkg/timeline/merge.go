package timeline

import (
	"sort"

	"github.com/ukaji3/timeline-go/pkg/timeline/models"
)

// PhotoLister returns the photos of one week below baseDir.
type PhotoLister interface {
	List(baseDir string, week int) []string
}

// Merge attaches photos to each record and sorts the entries by week.
// Records sharing a week keep their input order and each get the same photos.
func Merge(records []models.RawRecord, baseDir string, lister PhotoLister) []models.TimelineEntry {
	entries := make([]models.TimelineEntry, 0, len(records))
	for _, rec := range records {
		photos := lister.List(baseDir, rec.Week)
		if photos == nil {
			photos = []string{}
		}
		entries = append(entries, models.TimelineEntry{
			Week:    rec.Week,
			Start:   rec.Start,
			End:     rec.End,
			Comment: rec.Comment,
			Photos:  photos,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Week < entries[j].Week
	})
	return entries
}
