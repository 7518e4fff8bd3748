package parser

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadError represents a backend failure while reading a sheet.
type ReadError struct {
	SheetName string
	Backend   string // "excelize", "ooxml"
	Err       error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error in sheet %q (%s): %v", e.SheetName, e.Backend, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(sheetName, backend string, err error) *ReadError {
	return &ReadError{
		SheetName: sheetName,
		Backend:   backend,
		Err:       err,
	}
}
