package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a single stock-keeping record in the inventory ledger.
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// AddProductRequest represents the payload for adding a product.
// Fields are pointers so that a missing field can be told apart from a zero value.
type AddProductRequest struct {
	ID       *int64           `json:"id"`
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock,omitempty"`
	Category *string          `json:"category"`
}

// UpdateStockRequest represents the payload for a stock adjustment.
// Positive deltas restock, negative deltas consume.
type UpdateStockRequest struct {
	Delta *int `json:"delta"`
}

// TotalValueResponse represents the aggregate value of the inventory.
type TotalValueResponse struct {
	TotalValue decimal.Decimal `json:"totalValue"`
}
