package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/timeline-go/pkg/timeline/models"
	"go.uber.org/zap"
)

// SheetReader reads the records of one named sheet.
type SheetReader interface {
	ReadSheet(sheetName string) ([]models.RawRecord, error)
}

// Chain tries each reader in order and returns the first successful result.
type Chain struct {
	readers []SheetReader
	logger  *zap.Logger
}

// NewChain creates a fallback chain over readers.
func NewChain(logger *zap.Logger, readers ...SheetReader) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{readers: readers, logger: logger}
}

// ReadSheet returns the records of the first reader that succeeds.
// Failures of earlier readers are logged at debug level only. When every
// reader fails the joined errors are returned.
func (c *Chain) ReadSheet(sheetName string) ([]models.RawRecord, error) {
	var errs []error
	for i, r := range c.readers {
		records, err := safeRead(r, sheetName)
		if err == nil {
			return records, nil
		}
		errs = append(errs, err)
		if i < len(c.readers)-1 {
			c.logger.Debug("reader failed, falling back",
				zap.String("sheet", sheetName),
				zap.Int("reader", i),
				zap.Error(err),
			)
		}
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("no readers configured for sheet %q", sheetName)
	}
	return nil, errors.Join(errs...)
}

// safeRead converts a panic inside a reader into an error.
func safeRead(r SheetReader, sheetName string) (records []models.RawRecord, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("reader panicked on sheet %q: %v", sheetName, p)
		}
	}()
	return r.ReadSheet(sheetName)
}
