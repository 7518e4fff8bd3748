package parser

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected *string
	}{
		{"iso", TextCell("2024-03-05"), strPtr("2024-03-05")},
		{"day first wins", TextCell("05/03/2024"), strPtr("2024-03-05")},
		{"month first when day first fails", TextCell("12/31/2024"), strPtr("2024-12-31")},
		{"dashes day first", TextCell("31-12-2024"), strPtr("2024-12-31")},
		{"slashes year first", TextCell("2024/12/31"), strPtr("2024-12-31")},
		{"single digits", TextCell("5/3/2024"), strPtr("2024-03-05")},
		{"surrounding spaces", TextCell("  2024-01-07 "), strPtr("2024-01-07")},
		{"unknown kept", TextCell("not-a-date"), strPtr("not-a-date")},
		{"unknown trimmed", TextCell(" semana santa "), strPtr("semana santa")},
		{"datetime text kept", TextCell("2024-01-01 10:00:00"), strPtr("2024-01-01 10:00:00")},
		{"date cell", DateCell(time.Date(2024, 1, 7, 13, 30, 0, 0, time.UTC)), strPtr("2024-01-07")},
		{"number kept as text", NumberCell(45000), strPtr("45000")},
		{"blank", TextCell("  "), nil},
		{"empty", Cell{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.cell)
			if (got == nil) != (tt.expected == nil) || derefOr(got, "<nil>") != derefOr(tt.expected, "<nil>") {
				t.Errorf("NormalizeDate(%+v) = %s, expected %s", tt.cell, derefOr(got, "<nil>"), derefOr(tt.expected, "<nil>"))
			}
		})
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		id       int
		code     string
		expected bool
	}{
		{0, "", false},
		{1, "", false},
		{14, "", true},
		{22, "", true},
		{49, "", false},
		{164, "yyyy-mm-dd", true},
		{164, "dd/mm/yyyy;@", true},
		{164, "[$-409]mmmm d, yyyy", true},
		{164, "h:mm", false},
		{164, "[h]:mm:ss", false},
		{164, "mm:ss", false},
		{164, "mmm-yy", true},
		{164, "[Magenta]mmm", true},
		{164, "0.00", false},
		{164, `"day "0`, false},
		{164, "General", false},
	}

	for _, tt := range tests {
		if got := isDateFormat(tt.id, tt.code); got != tt.expected {
			t.Errorf("isDateFormat(%d, %q) = %v, expected %v", tt.id, tt.code, got, tt.expected)
		}
	}
}
