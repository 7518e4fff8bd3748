package parser

import (
	"testing"
	"time"
)

func TestParseWeek(t *testing.T) {
	tests := []struct {
		name   string
		cell   Cell
		want   int
		wantOK bool
	}{
		{"text with prefix", TextCell("Semana 5"), 5, true},
		{"numeric float", NumberCell(7.0), 7, true},
		{"fraction truncates", NumberCell(3.9), 3, true},
		{"plain digits", TextCell("12"), 12, true},
		{"first digit run wins", TextCell("W3-4"), 3, true},
		{"leading zeros", TextCell("Week 007"), 7, true},
		{"no digits", TextCell("abc"), 0, false},
		{"zero", NumberCell(0), 0, false},
		{"negative", NumberCell(-2), 0, false},
		{"bool true", BoolCell(true), 1, true},
		{"date uses its year", DateCell(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)), 2024, true},
		{"overflow", TextCell("99999999999999999999999"), 0, false},
		{"empty", Cell{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWeek(tt.cell)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseWeek(%+v) = (%d, %v), expected (%d, %v)", tt.cell, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCellIsBlank(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected bool
	}{
		{Cell{}, true},
		{TextCell(""), true},
		{TextCell("   "), true},
		{TextCell(" 1 "), false},
		{NumberCell(0), false},
		{BoolCell(false), false},
	}

	for _, tt := range tests {
		if got := tt.cell.IsBlank(); got != tt.expected {
			t.Errorf("%+v.IsBlank() = %v, expected %v", tt.cell, got, tt.expected)
		}
	}
}
