// Package timeline builds the weekly photo timeline from a workbook.
package timeline

import "time"

// Default locations, relative to the working directory.
const (
	DefaultWorkbook = "Aniversario.xlsx"
	DefaultPreDir   = "Pre"
	DefaultPostDir  = "Post"
	DefaultOutput   = "timeline.json"
)

// SheetSource pairs a sheet name with the base directory of its photos.
type SheetSource struct {
	// Sheet is the workbook sheet name.
	Sheet string
	// PhotoDir is the base directory holding the W<n> week directories.
	PhotoDir string
}

// Options configures a timeline build.
type Options struct {
	// WorkbookPath is the xlsx file to read.
	WorkbookPath string
	// Pre is the source of the "pre" list.
	Pre SheetSource
	// Post is the source of the "post" list.
	Post SheetSource
	// OutputPath is the JSON file to write.
	OutputPath string
	// Pretty enables two-space indentation of the output.
	Pretty bool
	// Now returns the generation time. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns the conventional file layout.
func DefaultOptions() Options {
	return Options{
		WorkbookPath: DefaultWorkbook,
		Pre:          SheetSource{Sheet: "Pre", PhotoDir: DefaultPreDir},
		Post:         SheetSource{Sheet: "Post", PhotoDir: DefaultPostDir},
		OutputPath:   DefaultOutput,
		Pretty:       true,
	}
}

// now returns the generation time in UTC.
func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now().UTC()
	}
	return time.Now().UTC()
}
