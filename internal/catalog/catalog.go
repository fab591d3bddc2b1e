package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Record is one product line of a catalogue file.
type Record struct {
	SKU         string          `json:"sku" validate:"required,max=30"`
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"min=0,max=2147483647"`
	Active      *bool           `json:"is_active,omitempty"`
}

// Loader reads a catalogue file.
type Loader interface {
	// Load reads a gzipped JSON-lines catalogue and returns its records.
	Load(ctx context.Context, path string) ([]Record, error)
}

// maxPrice is the first price that no longer fits NUMERIC(10, 2).
var maxPrice = decimal.New(1, 8)

var validate = validator.New()

// checkRecord validates a decoded record.
func checkRecord(rec *Record) error {
	rec.SKU = strings.TrimSpace(rec.SKU)
	rec.Name = strings.TrimSpace(rec.Name)

	if err := validate.Struct(rec); err != nil {
		return err
	}
	switch {
	case rec.Price.IsNegative():
		return fmt.Errorf("price must not be negative")
	case !rec.Price.Equal(rec.Price.Round(2)):
		return fmt.Errorf("price must have at most 2 decimal places")
	case rec.Price.GreaterThanOrEqual(maxPrice):
		return fmt.Errorf("price must be less than %s", maxPrice)
	}
	return nil
}

// decode reads gzipped JSON lines from r. Blank lines are skipped; a
// malformed or invalid line fails the whole file. When a SKU repeats, the
// later line wins.
func decode(ctx context.Context, r io.Reader, source string) ([]Record, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	// Set larger buffer for long descriptions
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var records []Record
	index := make(map[string]int)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		// Check context cancellation periodically
		if lineNo%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source, lineNo, err)
		}
		if err := checkRecord(&rec); err != nil {
			return nil, fmt.Errorf("%s line %d (sku %q): %w", source, lineNo, rec.SKU, err)
		}

		if i, dup := index[rec.SKU]; dup {
			records[i] = rec
			continue
		}
		index[rec.SKU] = len(records)
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", source, err)
	}

	return records, nil
}
