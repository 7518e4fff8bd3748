package parser

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role is the semantic meaning of a sheet column.
type Role string

const (
	RoleStart   Role = "start"
	RoleEnd     Role = "end"
	RoleWeek    Role = "week"
	RoleComment Role = "comment"
)

// HeaderVariants maps each role to the accepted header spellings, in priority order.
var HeaderVariants = map[Role][]string{
	RoleStart:   {"Inicio", "Start", "Fecha inicio", "Desde", "inicio (fecha)"},
	RoleEnd:     {"Fin", "End", "Fecha fin", "Hasta", "fin (fecha)"},
	RoleWeek:    {"Semana", "Week", "Week #", "W", "semana (week)", "semana (week #)"},
	RoleComment: {"Comentario", "Comment", "Notas", "Descripción", "comentario (comentario)"},
}

// headerPunctuation is replaced by spaces during normalization.
const headerPunctuation = "#():;,."

// NormalizeHeader folds a header to lowercase ASCII words for matching.
// Accents are decomposed and dropped, punctuation becomes whitespace and
// whitespace runs collapse to one space.
func NormalizeHeader(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}
	ascii = strings.ToLower(strings.TrimSpace(ascii))
	ascii = strings.Map(func(r rune) rune {
		if strings.ContainsRune(headerPunctuation, r) {
			return ' '
		}
		return r
	}, ascii)
	return strings.Join(strings.Fields(ascii), " ")
}

// ColumnMap holds the resolved 0-based column index of each role, -1 when absent.
type ColumnMap struct {
	Start   int
	End     int
	Week    int
	Comment int
}

// String renders the mapping for diagnostics.
func (m ColumnMap) String() string {
	return fmt.Sprintf("start=%d end=%d week=%d comment=%d", m.Start, m.End, m.Week, m.Comment)
}

// ResolveColumns maps actual headers to roles.
func ResolveColumns(headers []string) ColumnMap {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}
	return ColumnMap{
		Start:   findColumn(normalized, HeaderVariants[RoleStart]),
		End:     findColumn(normalized, HeaderVariants[RoleEnd]),
		Week:    findColumn(normalized, HeaderVariants[RoleWeek]),
		Comment: findColumn(normalized, HeaderVariants[RoleComment]),
	}
}

// findColumn returns the index of the first header matching one of the variants.
// Exact matches win over substring matches; substring matches are tried in header order.
func findColumn(normalized []string, variants []string) int {
	variantsNorm := make([]string, len(variants))
	for i, v := range variants {
		variantsNorm[i] = NormalizeHeader(v)
	}

	for _, v := range variantsNorm {
		for i, h := range normalized {
			if h != "" && h == v {
				return i
			}
		}
	}

	for i, h := range normalized {
		if h == "" {
			continue
		}
		for _, v := range variantsNorm {
			if strings.Contains(h, v) || strings.Contains(v, h) {
				return i
			}
		}
	}

	return -1
}

// headerName returns the original header for idx, or "" when absent.
func headerName(headers []string, idx int) string {
	if idx < 0 || idx >= len(headers) {
		return ""
	}
	return headers[idx]
}
