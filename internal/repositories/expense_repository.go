package repositories

import (
	"context"
	"sort"
	"sync"

	"salon-backend/internal/models"
	"salon-backend/internal/timeutil"

	"github.com/google/uuid"
)

// ExpenseRepository is the in-memory expense ledger. It has no coupling to
// the other ledgers.
type ExpenseRepository struct {
	mu         sync.RWMutex
	expenses   map[string]*models.Expense
	categories []*models.ExpenseCategory
}

func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		expenses:   make(map[string]*models.Expense),
		categories: defaultExpenseCategories(),
	}
}

func defaultExpenseCategories() []*models.ExpenseCategory {
	now := timeutil.Now()
	return []*models.ExpenseCategory{
		{ID: "1", Name: "Servicios", CreatedAt: now},
		{ID: "2", Name: "Salarios", CreatedAt: now},
		{ID: "3", Name: "Productos", CreatedAt: now},
		{ID: "4", Name: "Mantenimiento", CreatedAt: now},
	}
}

func (r *ExpenseRepository) Create(_ context.Context, e *models.Expense) (*models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = uuid.NewString()
	e.CreatedAt = timeutil.Now()

	cp := *e
	r.expenses[e.ID] = &cp

	return e, nil
}

func (r *ExpenseRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.expenses, id)
	return nil
}

func (r *ExpenseRepository) List(_ context.Context) ([]*models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ListByDateRange returns expenses dated inside the inclusive [start, end]
// range (YYYY-MM-DD strings).
func (r *ExpenseRepository) ListByDateRange(ctx context.Context, start, end string) ([]*models.Expense, error) {
	all, _ := r.List(ctx)

	out := make([]*models.Expense, 0)
	for _, e := range all {
		if timeutil.InRange(e.Date, start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ExpenseRepository) AddCategory(_ context.Context, name string) (*models.ExpenseCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &models.ExpenseCategory{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: timeutil.Now(),
	}
	r.categories = append(r.categories, c)

	cp := *c
	return &cp, nil
}

func (r *ExpenseRepository) DeleteCategory(_ context.Context, id string) error {
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

func (r *ExpenseRepository) GetCategory(_ context.Context, id string) (*models.ExpenseCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ExpenseRepository) ListCategories(_ context.Context) ([]*models.ExpenseCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.ExpenseCategory, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Reset clears all expenses and restores the default categories.
func (r *ExpenseRepository) Reset(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.expenses = make(map[string]*models.Expense)
	r.categories = defaultExpenseCategories()
}
