package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"inventory-ledger/internal/model"
	"inventory-ledger/internal/seed"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteCatalogue_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.jsonl.gz")
	catalogue := []model.AddProductRequest{
		product(1, "Producto 1", "100", 5, "Electrónica"),
		product(2, "Camiseta", "19.99", 25, "Ropa"),
	}

	require.NoError(t, writeCatalogue(path, catalogue))

	records, err := seed.NewFileLoader(zerolog.Nop()).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), *records[0].ID)
	assert.Equal(t, "19.99", records[1].Price.String())
	assert.Equal(t, 25, *records[1].Stock)
}

func TestWriteCatalogue_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "catalogue.jsonl.gz")

	err := writeCatalogue(path, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create file")
}

func TestEncodeCatalogue_ReportsFlushFailure(t *testing.T) {
	catalogue := []model.AddProductRequest{product(1, "Producto 1", "100", 5, "Electrónica")}

	err := encodeCatalogue(failingWriter{}, catalogue)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
