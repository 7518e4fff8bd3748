package parser

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name string
	rows [][]interface{}
}

// writeWorkbook saves an xlsx file with the given sheets to fs.
func writeWorkbook(t *testing.T, fs afero.Fs, path string, sheets ...testSheet) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatalf("SetSheetName failed: %v", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
		for r := range s.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			if err := f.SetSheetRow(s.name, cell, &s.rows[r]); err != nil {
				t.Fatalf("SetSheetRow failed: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write test workbook: %v", err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to save test workbook: %v", err)
	}
}

// preSheet is a sheet exercising every row outcome.
func preSheet() testSheet {
	return testSheet{
		name: "Pre",
		rows: [][]interface{}{
			{"Semana", "Inicio", "Fin", "Comentario"},
			{1, "2024-01-01", "2024-01-07", "Kickoff"},
			{"Semana 5", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "05/03/2024", nil},
			{nil, "x", "y", "z"},
			{"abc", "2024-01-01", nil, nil},
			{7.0, "not-a-date", nil, 42},
		},
	}
}

func strPtr(s string) *string { return &s }

func derefOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
