package service

import (
	"context"

	"inventory-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// InventoryService defines operations for inventory management.
// Implementations must be safe for concurrent use.
type InventoryService interface {
	// AddProduct registers a new product.
	AddProduct(ctx context.Context, req model.AddProductRequest) (*model.Product, error)

	// UpdateStock applies a signed stock adjustment to a product.
	UpdateStock(ctx context.Context, id int64, delta int) (*model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetAll retrieves every product in insertion order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByCategory retrieves the products of a category in insertion order.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// TotalValue computes the aggregate value of the stock on hand.
	TotalValue(ctx context.Context) (decimal.Decimal, error)
}
