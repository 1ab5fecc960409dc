package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"salon-backend/internal/models"
	"salon-backend/internal/timeutil"

	"github.com/google/uuid"
)

// InventoryRepository is the in-memory product and category store. All state
// lives for the process lifetime only; there is no persistence by design.
type InventoryRepository struct {
	mu         sync.RWMutex
	products   map[string]*models.Product
	categories []*models.Category
}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		products:   make(map[string]*models.Product),
		categories: defaultCategories(),
	}
}

// defaultCategories are the salon's seed categories, restored on reset.
func defaultCategories() []*models.Category {
	return []*models.Category{
		{ID: "1", Name: "Tintes"},
		{ID: "2", Name: "Shampoo"},
		{ID: "3", Name: "Tratamientos"},
		{ID: "4", Name: "Maquillaje"},
		{ID: "5", Name: "Accesorios"},
	}
}

func (r *InventoryRepository) Create(_ context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	p := &models.Product{
		ID:        uuid.NewString(),
		Code:      req.Code,
		Name:      req.Name,
		Category:  req.Category,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		CostPrice: req.CostPrice,
		SalePrice: req.SalePrice,
		ImageURL:  req.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.products[p.ID] = p

	cp := *p
	return &cp, nil
}

func (r *InventoryRepository) Get(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *InventoryRepository) List(_ context.Context) ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// Update merges the non-nil fields of req into the product and stamps
// UpdatedAt. This is the sole mutation point for product fields.
func (r *InventoryRepository) Update(_ context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Code != nil {
		p.Code = *req.Code
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}
	if req.SalePrice != nil {
		p.SalePrice = *req.SalePrice
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	p.UpdatedAt = timeutil.Now()

	cp := *p
	return &cp, nil
}

// Delete removes a product. Historical sale and credit items keep their
// productId references; those become orphans on purpose.
func (r *InventoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

// AdjustStock applies a batch of stock deltas atomically: every line is
// validated before any line is applied. Unknown product IDs are skipped, the
// same tolerance the ledgers extend to orphaned references elsewhere. A line
// that would drive stock negative rejects the whole batch.
func (r *InventoryRepository) AdjustStock(_ context.Context, deltas []models.StockDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Accumulate per product first so two lines for the same product are
	// judged against their combined effect.
	totals := make(map[string]int, len(deltas))
	for _, d := range deltas {
		if _, ok := r.products[d.ProductID]; !ok {
			continue
		}
		totals[d.ProductID] += d.Quantity
	}

	for id, delta := range totals {
		if p := r.products[id]; p.Stock+delta < 0 {
			return fmt.Errorf("%w: product %s has %d left, need %d", ErrInsufficientStock, p.Code, p.Stock, -delta)
		}
	}

	now := timeutil.Now()
	for id, delta := range totals {
		p := r.products[id]
		p.Stock += delta
		p.UpdatedAt = now
	}
	return nil
}

// LowStock returns products at or below their minimum stock level.
func (r *InventoryRepository) LowStock(ctx context.Context) ([]*models.Product, error) {
	products, _ := r.List(ctx)

	out := make([]*models.Product, 0)
	for _, p := range products {
		if p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InventoryRepository) AddCategory(_ context.Context, name string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &models.Category{ID: uuid.NewString(), Name: name}
	r.categories = append(r.categories, c)

	cp := *c
	return &cp, nil
}

func (r *InventoryRepository) DeleteCategory(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.categories[:0]
	for _, c := range r.categories {
		if c.ID != id {
			out = append(out, c)
		}
	}
	r.categories = out
	return nil
}

func (r *InventoryRepository) ListCategories(_ context.Context) ([]*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Reset clears all products and restores the default categories.
func (r *InventoryRepository) Reset(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make(map[string]*models.Product)
	r.categories = defaultCategories()
}
