package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-ledger/internal/ledger"
	"inventory-ledger/internal/model"
	"inventory-ledger/internal/service"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportService() service.InventoryService {
	return service.NewInventoryService(
		ledger.New(clockwork.NewFakeClockAt(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))),
		zerolog.Nop(),
	)
}

func product(id int64, name string, price int64, stock int, category string) model.AddProductRequest {
	p := decimal.NewFromInt(price)
	return model.AddProductRequest{ID: &id, Name: &name, Price: &p, Stock: &stock, Category: &category}
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	files := map[string][]model.AddProductRequest{
		"a.gz": {
			product(1, "Producto 1", 100, 5, "Electrónica"),
			product(2, "Producto 2", 200, 3, "Electrónica"),
		},
		"b.gz": {
			product(3, "Producto 3", 150, 4, "Hogar"),
			product(1, "Duplicado", 10, 1, "Hogar"),
			product(4, "Gratis", 0, 1, "Hogar"),
		},
	}
	loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.AddProductRequest, error) {
			return files[path], nil
		},
	}
	svc := newImportService()

	res, err := Import(ctx, loader, []string{"a.gz", "b.gz"}, svc, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, Result{Files: 2, Added: 3, Rejected: 2}, res)

	products, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(2), products[1].ID)
	assert.Equal(t, int64(3), products[2].ID)
	assert.Equal(t, "Producto 1", products[0].Name)
}

func TestImport_LoadFailureAddsNothing(t *testing.T) {
	ctx := context.Background()
	loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.AddProductRequest, error) {
			if path == "broken.gz" {
				return nil, errors.New("corrupt")
			}
			return []model.AddProductRequest{product(1, "Producto 1", 100, 5, "Electrónica")}, nil
		},
	}
	svc := newImportService()

	_, err := Import(ctx, loader, []string{"ok.gz", "broken.gz"}, svc, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.gz")

	products, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestImport_NoFiles(t *testing.T) {
	res, err := Import(context.Background(), &mockLoader{}, nil, newImportService(), zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestImport_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.AddProductRequest, error) {
			return []model.AddProductRequest{product(1, "Producto 1", 100, 5, "Electrónica")}, nil
		},
	}

	_, err := Import(ctx, loader, []string{"a.gz"}, newImportService(), zerolog.Nop())

	assert.ErrorIs(t, err, context.Canceled)
}
