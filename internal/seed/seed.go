// Package seed imports an initial product catalogue into the inventory at startup.
//
// Catalogue files are gzipped JSON lines, one product per line, using the same
// shape as the POST /api/products payload. Blank lines are ignored.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"inventory-ledger/internal/model"
)

// Loader defines the interface for loading catalogue files.
type Loader interface {
	// Load reads a gzipped catalogue file and returns its records in file order.
	Load(ctx context.Context, path string) ([]model.AddProductRequest, error)
}

// checkEvery is how many lines are read between context checks.
const checkEvery = 10_000

// decodeCatalogue reads gzipped JSON lines from r.
func decodeCatalogue(ctx context.Context, r io.Reader) ([]model.AddProductRequest, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var records []model.AddProductRequest
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req model.AddProductRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			return nil, fmt.Errorf("malformed record on line %d: %w", lineNo, err)
		}
		records = append(records, req)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalogue: %w", err)
	}

	return records, nil
}
