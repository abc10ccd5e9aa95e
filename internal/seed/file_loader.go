package seed

import (
	"context"
	"fmt"
	"os"

	"inventory-ledger/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading catalogue files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-file-loader").Logger(),
	}
}

// Load reads a gzipped catalogue file from the local file system.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.AddProductRequest, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", path, err)
	}
	defer file.Close()

	records, err := decodeCatalogue(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("records", len(records)).
		Msg("catalogue file loaded successfully")

	return records, nil
}
