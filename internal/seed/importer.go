package seed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"inventory-ledger/internal/model"
	"inventory-ledger/internal/service"

	"github.com/rs/zerolog"
)

// Result summarises an import run.
type Result struct {
	Files    int
	Added    int
	Rejected int
}

// Import loads every file concurrently and then adds the records through svc,
// file by file in the order given, so insertion order follows the input.
// Records the inventory rejects are logged and counted; a file that cannot be
// loaded aborts the import before anything is added.
func Import(ctx context.Context, loader Loader, paths []string, svc service.InventoryService, logger zerolog.Logger) (Result, error) {
	logger = logger.With().Str("component", "seed-importer").Logger()

	type loadResult struct {
		index   int
		records []model.AddProductRequest
		err     error
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			records, err := loader.Load(ctx, path)
			resultChan <- loadResult{index: index, records: records, err: err}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	results := make([]loadResult, len(paths))
	for result := range resultChan {
		results[result.index] = result
	}

	for i, result := range results {
		if result.err != nil {
			return Result{}, fmt.Errorf("failed to load catalogue file %s: %w", paths[i], result.err)
		}
	}

	res := Result{Files: len(paths)}
	for i, result := range results {
		for line, req := range result.records {
			if _, err := svc.AddProduct(ctx, req); err != nil {
				if !isDomainError(err) {
					return res, fmt.Errorf("failed to import %s: %w", paths[i], err)
				}
				logger.Warn().
					Str("file", paths[i]).
					Int("record", line+1).
					Str("reason", err.Error()).
					Msg("catalogue record rejected")
				res.Rejected++
				continue
			}
			res.Added++
		}
	}

	logger.Info().
		Int("files", res.Files).
		Int("added", res.Added).
		Int("rejected", res.Rejected).
		Msg("catalogue import completed")

	return res, nil
}

func isDomainError(err error) bool {
	var domainErr *model.DomainError
	return errors.As(err, &domainErr)
}
