//go:build ignore

package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"storefront/internal/catalog"

	"github.com/shopspring/decimal"
)

// generateSampleCatalog writes a gzipped JSON-lines catalogue that
// CATALOG_SEED_PATH can point at. Run with:
//
//	go run scripts/generate_sample_catalog.go
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	inactive := false
	records := []catalog.Record{
		{SKU: "LAMP-001", Name: "Desk Lamp", Description: "Adjustable LED lamp", Price: decimal.RequireFromString("24.99"), Stock: 40},
		{SKU: "CHAIR-001", Name: "Office Chair", Description: "Mesh back, lumbar support", Price: decimal.RequireFromString("149.00"), Stock: 12},
		{SKU: "MUG-001", Name: "Coffee Mug", Price: decimal.RequireFromString("8.50"), Stock: 200},
		{SKU: "PLANT-001", Name: "Snake Plant", Description: "Low light tolerant", Price: decimal.RequireFromString("19.95"), Stock: 25},
		{SKU: "RUG-001", Name: "Wool Rug", Price: decimal.RequireFromString("89.00"), Stock: 0, Active: &inactive},
	}

	filePath := filepath.Join(dataDir, "products.jsonl.gz")
	if err := createCatalogFile(filePath, records); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(records))
	fmt.Printf("\nSeed it at startup with:\n  CATALOG_SEED_PATH=%s\n", filePath)
}

func createCatalogFile(filePath string, records []catalog.Record) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	enc := json.NewEncoder(gzipWriter)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.SKU, err)
		}
	}

	return nil
}
