package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/ukaji3/timeline-go/pkg/timeline/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// BackendOOXML names the raw OOXML backend in logs and errors.
const BackendOOXML = "ooxml"

// ErrInvalidWorkbook indicates the archive has no readable workbook part.
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// OOXMLReader reads sheet cells straight from the xlsx zip parts.
type OOXMLReader struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

// NewOOXMLReader creates a reader for the workbook at path.
func NewOOXMLReader(fs afero.Fs, path string, logger *zap.Logger) *OOXMLReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OOXMLReader{fs: fs, path: path, logger: logger}
}

// ReadSheet implements SheetReader. A missing sheet yields no records and no error.
func (r *OOXMLReader) ReadSheet(sheetName string) ([]models.RawRecord, error) {
	file, err := r.fs.Open(r.path)
	if err != nil {
		return nil, NewReadError(sheetName, BackendOOXML, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, NewReadError(sheetName, BackendOOXML, err)
	}

	zr, err := zip.NewReader(file, info.Size())
	if err != nil {
		return nil, NewReadError(sheetName, BackendOOXML, err)
	}

	table, found, err := readSheetTable(zr, sheetName)
	if err != nil {
		return nil, NewReadError(sheetName, BackendOOXML, err)
	}
	if !found {
		r.logger.Info("sheet not found", zap.String("sheet", sheetName), zap.String("backend", BackendOOXML))
		return []models.RawRecord{}, nil
	}

	return readTable(r.logger, BackendOOXML, sheetName, table), nil
}

// readSheetTable locates the worksheet part of sheetName and decodes its cells.
func readSheetTable(r *zip.Reader, sheetName string) (SheetTable, bool, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return SheetTable{}, false, err
	}
	if workbookXML == nil {
		return SheetTable{}, false, ErrInvalidWorkbook
	}

	sheetsInfo := parseWorkbookSheets(workbookXML)
	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return SheetTable{}, false, err
	}
	sheetFiles := parseWorkbookRels(wbRelsXML, sheetsInfo)

	sheetPath, ok := sheetFiles[sheetName]
	if !ok {
		return SheetTable{}, false, nil
	}

	sheetXML, err := readZipFile(r, sheetPath)
	if err != nil {
		return SheetTable{}, false, err
	}
	if sheetXML == nil {
		return SheetTable{}, false, fmt.Errorf("worksheet part %s missing", sheetPath)
	}

	sstXML, err := readZipFile(r, "xl/sharedStrings.xml")
	if err != nil {
		return SheetTable{}, false, err
	}
	stylesXML, err := readZipFile(r, "xl/styles.xml")
	if err != nil {
		return SheetTable{}, false, err
	}

	dec := cellDecoder{
		sharedStrings: parseSharedStrings(sstXML),
		styles:        parseCellStyles(stylesXML),
		date1904:      parseDate1904(workbookXML),
	}
	table, err := dec.parseSheetXML(sheetXML)
	if err != nil {
		return SheetTable{}, false, err
	}
	return table, true, nil
}

// xlsxC is a worksheet cell element.
type xlsxC struct {
	R  string    `xml:"r,attr"`
	S  int       `xml:"s,attr"`
	T  string    `xml:"t,attr"`
	V  string    `xml:"v"`
	Is *xlsxText `xml:"is"`
}

// xlsxText is a shared string item or inline string: plain or rich text runs.
type xlsxText struct {
	T string `xml:"t"`
	R []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (t xlsxText) String() string {
	if len(t.R) == 0 {
		return t.T
	}
	var b strings.Builder
	b.WriteString(t.T)
	for _, run := range t.R {
		b.WriteString(run.T)
	}
	return b.String()
}

// cellDecoder resolves raw worksheet cells to typed cells.
type cellDecoder struct {
	sharedStrings []string
	styles        []bool // cellXfs index -> date format
	date1904      bool
}

// parseSheetXML decodes sheetData into a table. Rows missing from the part
// are kept as empty rows so that row counts match the sheet extent.
func (d cellDecoder) parseSheetXML(data []byte) (SheetTable, error) {
	rows := make(map[int][]Cell)
	maxRow := 0
	rowNum, colNum := 0, 0

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return SheetTable{}, err
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "row":
			rowNum++
			colNum = 0
			for _, attr := range se.Attr {
				if attr.Name.Local == "r" {
					if n, err := strconv.Atoi(attr.Value); err == nil {
						rowNum = n
					}
				}
			}
		case "c":
			var c xlsxC
			if err := decoder.DecodeElement(&c, &se); err != nil {
				return SheetTable{}, err
			}
			colNum++
			row := rowNum
			if c.R != "" {
				if col, r, err := excelize.CellNameToCoordinates(c.R); err == nil {
					colNum, row = col, r
				}
			}
			cell := d.cell(c)
			if cell.Kind == CellEmpty || row < 1 {
				continue
			}
			cells := rows[row]
			for len(cells) < colNum {
				cells = append(cells, Cell{})
			}
			cells[colNum-1] = cell
			rows[row] = cells
			if row > maxRow {
				maxRow = row
			}
		}
	}

	var table SheetTable
	if maxRow == 0 {
		return table, nil
	}
	table.Header = rows[1]
	for r := 2; r <= maxRow; r++ {
		table.Rows = append(table.Rows, rows[r])
	}
	return table, nil
}

func (d cellDecoder) cell(c xlsxC) Cell {
	switch c.T {
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(c.V))
		if err != nil || idx < 0 || idx >= len(d.sharedStrings) {
			return Cell{}
		}
		return TextCell(d.sharedStrings[idx])
	case "inlineStr":
		if c.Is == nil {
			return Cell{}
		}
		return TextCell(c.Is.String())
	case "str", "e":
		return TextCell(c.V)
	case "b":
		v := strings.TrimSpace(c.V)
		if v == "" {
			return Cell{}
		}
		return BoolCell(v == "1" || strings.EqualFold(v, "true"))
	case "d":
		if t, ok := parseISODateTime(strings.TrimSpace(c.V)); ok {
			return DateCell(t)
		}
		return TextCell(c.V)
	}

	raw := strings.TrimSpace(c.V)
	if raw == "" {
		return Cell{}
	}
	v, ok := parseNumber(raw)
	if !ok {
		return TextCell(raw)
	}
	if c.S >= 0 && c.S < len(d.styles) && d.styles[c.S] {
		if t, err := excelize.ExcelDateToTime(v, d.date1904); err == nil {
			return DateCell(t)
		}
	}
	return NumberCell(v)
}

// parseSharedStrings returns the shared string table in index order.
func parseSharedStrings(data []byte) []string {
	if data == nil {
		return nil
	}
	var result []string
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			var si xlsxText
			if err := decoder.DecodeElement(&si, &se); err != nil {
				break
			}
			result = append(result, si.String())
		}
	}
	return result
}

// parseCellStyles returns, per cellXfs index, whether the style formats a date.
func parseCellStyles(data []byte) []bool {
	if data == nil {
		return nil
	}
	customFormats := make(map[int]string)
	var xfNumFmts []int
	inCellXfs := false

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "numFmt":
				var id int
				var code string
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "numFmtId":
						id, _ = strconv.Atoi(attr.Value)
					case "formatCode":
						code = attr.Value
					}
				}
				customFormats[id] = code
			case "cellXfs":
				inCellXfs = true
			case "xf":
				if !inCellXfs {
					continue
				}
				id := 0
				for _, attr := range t.Attr {
					if attr.Name.Local == "numFmtId" {
						id, _ = strconv.Atoi(attr.Value)
					}
				}
				xfNumFmts = append(xfNumFmts, id)
			}
		case xml.EndElement:
			if t.Name.Local == "cellXfs" {
				inCellXfs = false
			}
		}
	}

	result := make([]bool, len(xfNumFmts))
	for i, id := range xfNumFmts {
		result[i] = isDateFormat(id, customFormats[id])
	}
	return result
}

// parseDate1904 reports whether the workbook uses the 1904 date system.
func parseDate1904(data []byte) bool {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			return false
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "workbookPr" {
			for _, attr := range se.Attr {
				if attr.Name.Local == "date1904" {
					return attr.Value == "1" || strings.EqualFold(attr.Value, "true")
				}
			}
			return false
		}
	}
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// resolveRelativePath resolves a relationship target against baseDir.
// Targets starting with "/" are absolute part names.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	if data == nil {
		return result
	}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}
