package parser

import (
	"math"
	"regexp"
	"strconv"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// ParseWeek extracts a week number from a cell.
// Numbers truncate toward zero and text yields its first run of digits.
// It returns false when no positive week number can be derived.
// Blank cells are expected to be filtered out by the caller.
func ParseWeek(c Cell) (int, bool) {
	var week int
	switch c.Kind {
	case CellNumber:
		if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) ||
			c.Number > math.MaxInt32 || c.Number < math.MinInt32 {
			return 0, false
		}
		week = int(c.Number)
	case CellBool:
		if c.Bool {
			week = 1
		}
	case CellText, CellDate:
		m := digitRun.FindString(c.String())
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		week = n
	default:
		return 0, false
	}
	if week < 1 {
		return 0, false
	}
	return week, true
}
