package timeline

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/ukaji3/timeline-go/pkg/timeline/models"
	"github.com/ukaji3/timeline-go/pkg/timeline/output"
	"github.com/ukaji3/timeline-go/pkg/timeline/parser"
	"github.com/ukaji3/timeline-go/pkg/timeline/photos"
	"go.uber.org/zap"
)

// GeneratedAtLayout is the layout of Document.GeneratedAt.
const GeneratedAtLayout = "2006-01-02T15:04:05Z"

// Build reads both sheets of the workbook and merges them with their photos.
// It fails only when the workbook does not exist; a sheet that cannot be
// read contributes no entries.
func Build(fs afero.Fs, opts Options, logger *zap.Logger) (*models.Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Validate input file exists
	exists, err := afero.Exists(fs, opts.WorkbookPath)
	if err != nil {
		return nil, NewBuildError("read", opts.WorkbookPath, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, opts.WorkbookPath)
	}

	reader := parser.NewChain(logger,
		parser.NewExcelizeReader(fs, opts.WorkbookPath, logger),
		parser.NewOOXMLReader(fs, opts.WorkbookPath, logger),
	)
	lister := photos.NewLister(fs)

	return &models.Document{
		GeneratedAt: opts.now().Format(GeneratedAtLayout),
		Pre:         buildSheet(reader, lister, opts.WorkbookPath, opts.Pre, logger),
		Post:        buildSheet(reader, lister, opts.WorkbookPath, opts.Post, logger),
	}, nil
}

// buildSheet reads one sheet and merges it with its photos.
func buildSheet(reader parser.SheetReader, lister PhotoLister, workbook string, src SheetSource, logger *zap.Logger) []models.TimelineEntry {
	records, err := reader.ReadSheet(src.Sheet)
	if err != nil {
		logger.Error("failed to read sheet",
			zap.String("workbook", workbook),
			zap.String("sheet", src.Sheet),
			zap.Error(err),
		)
		records = nil
	}
	return Merge(records, src.PhotoDir, lister)
}

// Run builds the timeline and writes it to opts.OutputPath, replacing any previous file.
func Run(fs afero.Fs, opts Options, logger *zap.Logger) (*models.Document, error) {
	doc, err := Build(fs, opts, logger)
	if err != nil {
		return nil, err
	}

	if err := output.WriteFile(fs, opts.OutputPath, doc, opts.Pretty); err != nil {
		return nil, NewBuildError("write", opts.OutputPath, err)
	}
	return doc, nil
}
