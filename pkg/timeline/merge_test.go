package timeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/timeline-go/pkg/timeline/models"
)

// fakeLister returns canned photos per week and records the lookups.
type fakeLister struct {
	photos map[int][]string
	calls  []int
}

func (f *fakeLister) List(baseDir string, week int) []string {
	f.calls = append(f.calls, week)
	return f.photos[week]
}

func strPtr(s string) *string { return &s }

func TestMergeSortsByWeek(t *testing.T) {
	lister := &fakeLister{photos: map[int][]string{
		2: {"Pre/W2/a.jpg"},
		5: {"Pre/W5/x.png", "Pre/W5/y.png"},
	}}
	records := []models.RawRecord{
		{Week: 5, Comment: strPtr("first five")},
		{Week: 2, Start: strPtr("2024-01-08")},
		{Week: 5, Comment: strPtr("second five")},
		{Week: 1},
	}

	got := Merge(records, "Pre", lister)

	want := []models.TimelineEntry{
		{Week: 1, Photos: []string{}},
		{Week: 2, Start: strPtr("2024-01-08"), Photos: []string{"Pre/W2/a.jpg"}},
		{Week: 5, Comment: strPtr("first five"), Photos: []string{"Pre/W5/x.png", "Pre/W5/y.png"}},
		{Week: 5, Comment: strPtr("second five"), Photos: []string{"Pre/W5/x.png", "Pre/W5/y.png"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{5, 2, 5, 1}, lister.calls); diff != "" {
		t.Errorf("lookups mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeEmpty(t *testing.T) {
	got := Merge(nil, "Post", &fakeLister{})
	if got == nil || len(got) != 0 {
		t.Errorf("Merge(nil) = %#v, expected empty non-nil slice", got)
	}
}
