// Package parser reads timeline sheets from xlsx workbooks.
package parser

import (
	"strconv"
	"strings"
	"time"
)

// CellKind identifies the type of a cell value.
type CellKind int

const (
	// CellEmpty is a cell with no value.
	CellEmpty CellKind = iota
	// CellText is a string cell (shared, inline or formula string).
	CellText
	// CellNumber is a numeric cell without a date number format.
	CellNumber
	// CellDate is a numeric cell with a date number format, or an ISO date cell.
	CellDate
	// CellBool is a boolean cell.
	CellBool
)

// Cell is a typed cell value produced by both backends.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
	Bool   bool
}

// TextCell returns a text cell, or an empty cell for "".
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// DateCell returns a date cell.
func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Time: t}
}

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell {
	return Cell{Kind: CellBool, Bool: b}
}

// IsBlank reports whether the cell is empty or whitespace-only text.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellText:
		return strings.TrimSpace(c.Text) == ""
	}
	return false
}

// String renders the cell value as text.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Time.Format("2006-01-02 15:04:05")
	case CellBool:
		if c.Bool {
			return "True"
		}
		return "False"
	}
	return ""
}

// cellAt returns the cell at idx, or an empty cell when idx is out of range.
func cellAt(row []Cell, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return Cell{}
	}
	return row[idx]
}
