package catalog

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBatchSize is the number of products written per upsert.
const DefaultBatchSize = 500

// ProductUpserter writes products keyed on SKU.
type ProductUpserter interface {
	UpsertBySKU(ctx context.Context, products []model.Product) (int, error)
}

// Importer seeds the product catalogue from a catalogue file.
type Importer struct {
	loader    Loader
	products  ProductUpserter
	batchSize int
	now       func() time.Time
	logger    zerolog.Logger
}

// NewImporter creates an importer. batchSize <= 0 selects DefaultBatchSize.
func NewImporter(loader Loader, products ProductUpserter, batchSize int, logger zerolog.Logger) *Importer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Importer{
		loader:    loader,
		products:  products,
		batchSize: batchSize,
		now:       time.Now,
		logger:    logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// Import loads path and upserts every record by SKU. Existing products keep
// their id and category. It returns the number of rows written.
func (i *Importer) Import(ctx context.Context, path string) (int, error) {
	start := time.Now()

	records, err := i.loader.Load(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalogue: %w", err)
	}

	now := i.now().UTC()
	written := 0
	for lo := 0; lo < len(records); lo += i.batchSize {
		hi := min(lo+i.batchSize, len(records))

		batch := make([]model.Product, 0, hi-lo)
		for _, rec := range records[lo:hi] {
			batch = append(batch, toProduct(rec, now))
		}

		n, err := i.products.UpsertBySKU(ctx, batch)
		if err != nil {
			i.logger.Error().Err(err).Int("offset", lo).Msg("catalogue batch failed")
			return written, fmt.Errorf("failed to import catalogue at record %d: %w", lo, err)
		}
		written += n
	}

	i.logger.Info().
		Str("path", path).
		Int("records", len(records)).
		Int("written", written).
		Dur("duration", time.Since(start)).
		Msg("catalogue imported")

	return written, nil
}

func toProduct(rec Record, now time.Time) model.Product {
	active := true
	if rec.Active != nil {
		active = *rec.Active
	}
	return model.Product{
		ID:          uuid.New(),
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		Stock:       rec.Stock,
		SKU:         rec.SKU,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
