package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/ukaji3/timeline-go/pkg/timeline/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// BackendExcelize names the excelize backend in logs and errors.
const BackendExcelize = "excelize"

// ExcelizeReader reads sheets with the excelize engine.
type ExcelizeReader struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

// NewExcelizeReader creates a reader for the workbook at path.
func NewExcelizeReader(fs afero.Fs, path string, logger *zap.Logger) *ExcelizeReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExcelizeReader{fs: fs, path: path, logger: logger}
}

// ReadSheet implements SheetReader. A missing sheet is an error.
func (r *ExcelizeReader) ReadSheet(sheetName string) ([]models.RawRecord, error) {
	file, err := r.fs.Open(r.path)
	if err != nil {
		return nil, NewReadError(sheetName, BackendExcelize, err)
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, NewReadError(sheetName, BackendExcelize, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, NewReadError(sheetName, BackendExcelize, ErrSheetNotFound)
	}

	table, err := ExtractTable(f, sheetName)
	if err != nil {
		return nil, NewReadError(sheetName, BackendExcelize, err)
	}

	return readTable(r.logger, BackendExcelize, sheetName, table), nil
}

// ExtractTable reads typed cells from a sheet.
// The first row is the header; the remaining rows are data.
func ExtractTable(f *excelize.File, sheetName string) (SheetTable, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return SheetTable{}, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	tc := &typedCells{f: f, sheet: sheetName, date1904: date1904, dateStyles: make(map[int]bool)}

	var table SheetTable
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]Cell, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				cells[colIdx] = TextCell(cellValue)
				continue
			}
			cells[colIdx] = tc.cell(cellName, cellValue)
		}

		if rowIdx == 0 {
			table.Header = cells
			continue
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

// typedCells resolves raw cell values to typed cells, caching date styles.
type typedCells struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (tc *typedCells) cell(cellName, raw string) Cell {
	cellType, err := tc.f.GetCellType(tc.sheet, cellName)
	if err != nil {
		return TextCell(raw)
	}

	switch cellType {
	case excelize.CellTypeBool:
		return BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeDate:
		if t, ok := parseISODateTime(raw); ok {
			return DateCell(t)
		}
		return TextCell(raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		v, ok := parseNumber(raw)
		if !ok {
			return TextCell(raw)
		}
		if tc.isDateCell(cellName) {
			if t, err := excelize.ExcelDateToTime(v, tc.date1904); err == nil {
				return DateCell(t)
			}
		}
		return NumberCell(v)
	}
	return TextCell(raw)
}

func (tc *typedCells) isDateCell(cellName string) bool {
	styleID, err := tc.f.GetCellStyle(tc.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := tc.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := tc.f.GetStyle(styleID); err == nil && style != nil {
		code := ""
		if style.CustomNumFmt != nil {
			code = *style.CustomNumFmt
		}
		isDate = isDateFormat(style.NumFmt, code)
	}
	tc.dateStyles[styleID] = isDate
	return isDate
}

// parseNumber parses a raw numeric cell value.
func parseNumber(s string) (float64, bool) {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return 0, false
}

// isoDateTimeLayouts are the layouts of t="d" cells.
var isoDateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISODateTime(s string) (time.Time, bool) {
	for _, layout := range isoDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
