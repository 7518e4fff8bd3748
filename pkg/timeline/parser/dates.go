package parser

import (
	"strings"
	"time"
)

// DateLayouts are tried in order against textual date cells.
// Day and month accept one or two digits.
var DateLayouts = []string{
	"2006-1-2", // YYYY-MM-DD
	"2/1/2006", // DD/MM/YYYY
	"1/2/2006", // MM/DD/YYYY
	"2-1-2006", // DD-MM-YYYY
	"2006/1/2", // YYYY/MM/DD
}

// NormalizeDate converts a cell to YYYY-MM-DD when possible.
// Unrecognized text is returned trimmed and unchanged; blank cells yield nil.
func NormalizeDate(c Cell) *string {
	if c.Kind == CellDate {
		s := c.Time.Format("2006-01-02")
		return &s
	}
	if c.IsBlank() {
		return nil
	}
	s := strings.TrimSpace(c.String())
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return &s
}

// builtinDateFormats lists the built-in number format ids that render dates.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateFormat reports whether a number format displays a date.
// Custom codes are scanned for date tokens outside quoted literals,
// escapes and bracketed sections such as [Red] or [$-409].
func isDateFormat(numFmtID int, code string) bool {
	if builtinDateFormats[numFmtID] {
		return true
	}
	if code == "" || strings.EqualFold(code, "general") {
		return false
	}

	// Only the first section applies to positive numbers.
	if idx := strings.Index(code, ";"); idx >= 0 {
		code = code[:idx]
	}

	var hasDay, hasMonth, hasTime bool
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
			if end := strings.IndexByte(code[i:], ']'); end > 0 && isElapsedToken(code[i+1:i+end]) {
				hasTime = true
			}
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			switch ch | 0x20 {
			case 'y', 'd':
				hasDay = true
			case 'm':
				hasMonth = true
			case 'h', 's':
				hasTime = true
			}
		}
	}
	// Without days or years, "m" next to hours or seconds means minutes.
	return hasDay || (hasMonth && !hasTime)
}

// isElapsedToken reports whether a bracketed token is an elapsed time unit
// such as [h], [mm] or [ss].
func isElapsedToken(token string) bool {
	if token == "" {
		return false
	}
	first := token[0] | 0x20
	if first != 'h' && first != 'm' && first != 's' {
		return false
	}
	for i := 1; i < len(token); i++ {
		if token[i]|0x20 != first {
			return false
		}
	}
	return true
}
