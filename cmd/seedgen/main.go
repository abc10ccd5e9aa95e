package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"inventory-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// seedgen writes a sample gzipped JSON-lines catalogue that the API can import
// at startup through SEED_FILES.
func main() {
	out := flag.String("out", "data/seed/catalogue.jsonl.gz", "output file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalogue := []model.AddProductRequest{
		product(1, "Producto 1", "100", 5, "Electrónica"),
		product(2, "Producto 2", "200", 3, "Electrónica"),
		product(3, "Producto 3", "150", 4, "Hogar"),
		product(4, "Producto 4", "50", 10, "Hogar"),
		product(5, "Camiseta", "19.99", 25, "Ropa"),
	}

	if err := writeCatalogue(*out, catalogue); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d products\n", *out, len(catalogue))
}

func product(id int64, name, price string, stock int, category string) model.AddProductRequest {
	p := decimal.RequireFromString(price)
	return model.AddProductRequest{ID: &id, Name: &name, Price: &p, Stock: &stock, Category: &category}
}

func writeCatalogue(path string, products []model.AddProductRequest) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	return encodeCatalogue(file, products)
}

// encodeCatalogue writes products as gzipped JSON lines to w.
func encodeCatalogue(w io.Writer, products []model.AddProductRequest) error {
	gzipWriter := gzip.NewWriter(w)

	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			gzipWriter.Close()
			return fmt.Errorf("failed to write product: %w", err)
		}
	}

	// Close flushes the compressed stream and writes the gzip trailer.
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}

	return nil
}
