package service

import (
	"context"
	"errors"
	"sync"

	"inventory-ledger/internal/ledger"
	"inventory-ledger/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// inventoryService implements InventoryService on top of a single ledger.
type inventoryService struct {
	mu     sync.RWMutex
	ledger *ledger.Ledger
	logger zerolog.Logger
}

// NewInventoryService creates a new inventory service that owns l.
// The ledger must not be used directly by anything else afterwards.
func NewInventoryService(l *ledger.Ledger, logger zerolog.Logger) InventoryService {
	return &inventoryService{
		ledger: l,
		logger: logger.With().Str("service", "inventory").Logger(),
	}
}

// AddProduct registers a new product.
func (s *inventoryService) AddProduct(ctx context.Context, req model.AddProductRequest) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.ledger.AddProduct(req)
	if err != nil {
		s.logRejection(err, "add product rejected")
		return nil, err
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("category", product.Category).
		Int("stock", product.Stock).
		Msg("product added")

	return snapshot(product), nil
}

// UpdateStock applies a signed stock adjustment to a product.
func (s *inventoryService) UpdateStock(ctx context.Context, id int64, delta int) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.ledger.UpdateStock(id, delta)
	if err != nil {
		s.logRejection(err, "stock update rejected")
		return nil, err
	}

	s.logger.Info().
		Int64("product_id", id).
		Int("delta", delta).
		Int("stock_before", product.Stock-delta).
		Int("stock_after", product.Stock).
		Msg("stock updated")

	return snapshot(product), nil
}

// GetByID retrieves a single product by ID.
func (s *inventoryService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	product, err := s.ledger.Product(id)
	if err != nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, err
	}

	return snapshot(product), nil
}

// GetAll retrieves every product in insertion order.
func (s *inventoryService) GetAll(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	products := snapshots(s.ledger.Products())

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByCategory retrieves the products of a category in insertion order.
func (s *inventoryService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches, err := s.ledger.ProductsByCategory(category)
	if err != nil {
		s.logger.Debug().Str("category", category).Msg("no products in category")
		return nil, err
	}

	s.logger.Debug().
		Str("category", category).
		Int("count", len(matches)).
		Msg("retrieved products by category")

	return snapshots(matches), nil
}

// TotalValue computes the aggregate value of the stock on hand.
func (s *inventoryService) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ledger.TotalValue(), nil
}

// logRejection records a business rule failure. Unexpected errors are logged at error level.
func (s *inventoryService) logRejection(err error, msg string) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		s.logger.Warn().Str("code", domainErr.Code).Str("reason", domainErr.Message).Msg(msg)
		return
	}
	s.logger.Error().Err(err).Msg(msg)
}

// snapshot copies a ledger record so callers never share state with the ledger.
func snapshot(p *model.Product) *model.Product {
	out := *p
	if p.UpdatedAt != nil {
		updatedAt := *p.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return &out
}

func snapshots(products []*model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		out = append(out, *snapshot(p))
	}
	return out
}
