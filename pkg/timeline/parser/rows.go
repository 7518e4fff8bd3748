package parser

import (
	"strings"

	"github.com/ukaji3/timeline-go/pkg/timeline/models"
	"go.uber.org/zap"
)

// sampleWeekValues is the number of week cells shown in debug diagnostics.
const sampleWeekValues = 5

// RowStats summarizes how the rows of a sheet were converted.
type RowStats struct {
	// Total is the number of data rows below the header.
	Total int
	// NonEmptyWeek is the number of rows with a non-blank week cell.
	NonEmptyWeek int
	// Failures is the number of rows whose week could not be parsed.
	Failures int
	// Parsed is the number of records produced.
	Parsed int
}

// SheetTable is the typed content of a sheet: header row and data rows.
type SheetTable struct {
	Header []Cell
	Rows   [][]Cell
}

// HeaderNames returns the header row as trimmed strings.
func (t SheetTable) HeaderNames() []string {
	names := make([]string, len(t.Header))
	for i, c := range t.Header {
		names[i] = strings.TrimSpace(c.String())
	}
	return names
}

// BuildRecords converts the table rows into records.
// Rows with a blank week cell are skipped; rows whose week does not parse are counted
// as failures and dropped.
func BuildRecords(table SheetTable) ([]models.RawRecord, ColumnMap, RowStats) {
	cols := ResolveColumns(table.HeaderNames())
	stats := RowStats{Total: len(table.Rows)}

	records := make([]models.RawRecord, 0, len(table.Rows))
	if cols.Week < 0 {
		return records, cols, stats
	}

	for _, row := range table.Rows {
		weekCell := cellAt(row, cols.Week)
		if weekCell.IsBlank() {
			continue
		}
		stats.NonEmptyWeek++

		week, ok := ParseWeek(weekCell)
		if !ok {
			stats.Failures++
			continue
		}

		records = append(records, models.RawRecord{
			Week:    week,
			Start:   NormalizeDate(cellAt(row, cols.Start)),
			End:     NormalizeDate(cellAt(row, cols.End)),
			Comment: commentText(cellAt(row, cols.Comment)),
		})
	}
	stats.Parsed = len(records)

	return records, cols, stats
}

// readTable runs BuildRecords and emits the per-sheet diagnostics.
func readTable(logger *zap.Logger, backend, sheetName string, table SheetTable) []models.RawRecord {
	headers := table.HeaderNames()
	records, cols, stats := BuildRecords(table)

	logger = logger.With(zap.String("sheet", sheetName), zap.String("backend", backend))
	logger.Info("detected headers", zap.Strings("headers", headers))
	logger.Info("column mapping",
		zap.String("start", headerName(headers, cols.Start)),
		zap.String("end", headerName(headers, cols.End)),
		zap.String("week", headerName(headers, cols.Week)),
		zap.String("comment", headerName(headers, cols.Comment)),
	)
	if cols.Week >= 0 {
		logger.Debug("week samples", zap.Strings("values", weekSamples(table.Rows, cols.Week)))
	}
	logger.Info("rows converted",
		zap.Int("total", stats.Total),
		zap.Int("non_empty_week", stats.NonEmptyWeek),
		zap.Int("failures", stats.Failures),
		zap.Int("parsed", stats.Parsed),
	)

	return records
}

func weekSamples(rows [][]Cell, col int) []string {
	var samples []string
	for _, row := range rows {
		if len(samples) == sampleWeekValues {
			break
		}
		if c := cellAt(row, col); !c.IsBlank() {
			samples = append(samples, c.String())
		}
	}
	return samples
}

func commentText(c Cell) *string {
	if c.IsBlank() {
		return nil
	}
	s := c.String()
	return &s
}
