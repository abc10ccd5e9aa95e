// Package ledger implements the in-memory product inventory ledger.
//
// A Ledger is not safe for concurrent use. Hosts serving more than one caller
// must serialise every operation, including reads, around the whole ledger.
package ledger

import (
	"math"
	"strings"
	"time"

	"inventory-ledger/internal/model"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// Ledger owns an ordered collection of products keyed by ID.
type Ledger struct {
	products []*model.Product
	index    map[int64]int
	clock    clockwork.Clock
}

// New creates an empty ledger that stamps records using c.
// A nil clock falls back to the wall clock.
func New(c clockwork.Clock) *Ledger {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return &Ledger{
		index: make(map[int64]int),
		clock: c,
	}
}

// AddProduct validates req and appends a new product.
// It returns the stored record, including the defaulted stock and creation time.
func (l *Ledger) AddProduct(req model.AddProductRequest) (*model.Product, error) {
	if req.ID == nil || blank(req.Name) || req.Price == nil || blank(req.Category) {
		return nil, model.ErrMissingFields
	}

	if _, exists := l.index[*req.ID]; exists {
		return nil, model.ErrDuplicateProduct
	}

	if !req.Price.IsPositive() {
		return nil, model.ErrInvalidPrice
	}

	stock := 0
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, model.ErrNegativeStock
		}
		stock = *req.Stock
	}

	p := &model.Product{
		ID:        *req.ID,
		Name:      *req.Name,
		Price:     *req.Price,
		Stock:     stock,
		Category:  *req.Category,
		CreatedAt: l.now(),
	}

	l.index[p.ID] = len(l.products)
	l.products = append(l.products, p)

	return p, nil
}

// UpdateStock applies delta to the stock of the product with the given ID.
// The returned pointer is the record held by the ledger.
func (l *Ledger) UpdateStock(id int64, delta int) (*model.Product, error) {
	p, err := l.Product(id)
	if err != nil {
		return nil, err
	}

	if delta > 0 && p.Stock > math.MaxInt-delta {
		return nil, model.ErrStockOverflow
	}

	newStock := p.Stock + delta
	if newStock < 0 {
		return nil, model.ErrInsufficientStock
	}

	now := l.now()
	p.Stock = newStock
	p.UpdatedAt = &now

	return p, nil
}

// Product returns the record with the given ID.
func (l *Ledger) Product(id int64) (*model.Product, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	return l.products[i], nil
}

// Products returns every record in insertion order.
func (l *Ledger) Products() []*model.Product {
	out := make([]*model.Product, len(l.products))
	copy(out, l.products)
	return out
}

// ProductsByCategory returns the products whose category equals category
// exactly, in insertion order. An empty match is reported as an error.
func (l *Ledger) ProductsByCategory(category string) ([]*model.Product, error) {
	var matches []*model.Product
	for _, p := range l.products {
		if p.Category == category {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		return nil, model.ErrCategoryNotFound
	}

	return matches, nil
}

// TotalValue returns the sum of price * stock over all products.
func (l *Ledger) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}

func (l *Ledger) now() time.Time {
	return l.clock.Now().UTC()
}

// blank treats a nil or whitespace-only string as missing.
func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// Len returns the number of products in the ledger.
func (l *Ledger) Len() int {
	return len(l.products)
}
