package parser

import "testing"

func TestBuildRecords(t *testing.T) {
	table := SheetTable{
		Header: []Cell{TextCell("Week #"), TextCell(" Start "), TextCell("End"), TextCell("Notas")},
		Rows: [][]Cell{
			{NumberCell(2), TextCell("2024-01-08"), TextCell("2024-01-14"), TextCell("Segunda")},
			{TextCell("  ")},
			{},
			{TextCell("n/a"), TextCell("2024-01-01")},
			{TextCell("Semana 1"), TextCell("01/01/2024")},
		},
	}

	records, cols, stats := BuildRecords(table)

	if cols != (ColumnMap{Start: 1, End: 2, Week: 0, Comment: 3}) {
		t.Errorf("Unexpected column map: %v", cols)
	}
	expectedStats := RowStats{Total: 5, NonEmptyWeek: 3, Failures: 1, Parsed: 2}
	if stats != expectedStats {
		t.Errorf("stats = %+v, expected %+v", stats, expectedStats)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	// Input order is preserved; sorting happens when merging.
	if records[0].Week != 2 || derefOr(records[0].Comment, "") != "Segunda" {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
	second := records[1]
	if second.Week != 1 || derefOr(second.Start, "") != "2024-01-01" || second.End != nil || second.Comment != nil {
		t.Errorf("Unexpected second record: week=%d start=%s end=%v comment=%v",
			second.Week, derefOr(second.Start, "<nil>"), second.End, second.Comment)
	}
}

func TestBuildRecordsWithoutWeekColumn(t *testing.T) {
	table := SheetTable{
		Header: []Cell{TextCell("Inicio"), TextCell("Fin")},
		Rows: [][]Cell{
			{TextCell("2024-01-01"), TextCell("2024-01-07")},
		},
	}

	records, cols, stats := BuildRecords(table)
	if cols.Week != -1 {
		t.Errorf("Expected no week column, got %d", cols.Week)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
	if stats != (RowStats{Total: 1}) {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestBuildRecordsWithoutOptionalColumns(t *testing.T) {
	table := SheetTable{
		Header: []Cell{TextCell("Semana")},
		Rows:   [][]Cell{{NumberCell(4)}},
	}

	records, _, _ := BuildRecords(table)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if r := records[0]; r.Week != 4 || r.Start != nil || r.End != nil || r.Comment != nil {
		t.Errorf("Expected only the week to be set, got %+v", r)
	}
}
