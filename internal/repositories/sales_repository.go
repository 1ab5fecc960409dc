package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"salon-backend/internal/models"
	"salon-backend/internal/timeutil"
	"salon-backend/pkg/utils"

	"github.com/google/uuid"
)

// SalesRepository holds sales, the thin sales-context customers, and the "V"
// invoice counter. Invoice numbers are issued inside the repository lock so
// they stay unique and strictly increasing for the process lifetime.
type SalesRepository struct {
	mu                sync.RWMutex
	sales             map[string]*models.Sale
	customers         map[string]*models.SaleCustomer
	lastInvoiceNumber int
}

func NewSalesRepository() *SalesRepository {
	return &SalesRepository{
		sales:     make(map[string]*models.Sale),
		customers: make(map[string]*models.SaleCustomer),
	}
}

// Create fills in the sale's identity fields (id, invoice number, creation
// time, completed status) and stores it.
func (r *SalesRepository) Create(_ context.Context, sale *models.Sale) (*models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sale.ID = uuid.NewString()
	sale.InvoiceNumber = utils.NextInvoiceNumber("V", r.lastInvoiceNumber)
	r.lastInvoiceNumber++
	sale.Status = models.SaleCompleted
	sale.CreatedAt = timeutil.Now()

	cp := *sale
	r.sales[sale.ID] = &cp

	return sale, nil
}

func (r *SalesRepository) Get(_ context.Context, id string) (*models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sales[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

// Cancel flips a completed sale to cancelled. It reports false without
// touching anything when the sale is missing or already cancelled, so repeat
// calls are safe no-ops.
func (r *SalesRepository) Cancel(_ context.Context, id, reason string) (*models.Sale, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sales[id]
	if !ok || s.Status == models.SaleCancelled {
		return nil, false
	}

	now := timeutil.Now()
	s.Status = models.SaleCancelled
	s.CancellationReason = reason
	s.CancelledAt = &now

	cp := *s
	return &cp, true
}

// VoidByCredit cancels the completed sales mirrored from the given credit,
// marking them voided-by-credit. The records stay in the ledger; only their
// status changes, so the audit trail survives a credit cancellation.
func (r *SalesRepository) VoidByCredit(_ context.Context, creditID, reason string) []*models.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	var voided []*models.Sale
	for _, s := range r.sales {
		if s.CreditID != creditID || s.Status == models.SaleCancelled {
			continue
		}
		s.Status = models.SaleCancelled
		s.VoidedByCredit = true
		s.CancellationReason = reason
		s.CancelledAt = &now

		cp := *s
		voided = append(voided, &cp)
	}
	return voided
}

func (r *SalesRepository) List(_ context.Context) ([]*models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		cp := *s
		out = append(out, &cp)
	}
	sortSales(out)
	return out, nil
}

// ListActive returns completed sales only.
func (r *SalesRepository) ListActive(ctx context.Context) ([]*models.Sale, error) {
	all, _ := r.List(ctx)

	out := make([]*models.Sale, 0, len(all))
	for _, s := range all {
		if s.Status == models.SaleCompleted {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListByDateRange returns non-cancelled sales created inside the inclusive
// [start, end] date range (YYYY-MM-DD strings, date-only granularity).
func (r *SalesRepository) ListByDateRange(ctx context.Context, start, end string) ([]*models.Sale, error) {
	all, _ := r.List(ctx)

	out := make([]*models.Sale, 0)
	for _, s := range all {
		if s.Status == models.SaleCancelled {
			continue
		}
		if timeutil.InRange(s.CreatedAt, start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

// FindCustomerByName does a case-insensitive exact match on customer name.
func (r *SalesRepository) FindCustomerByName(_ context.Context, name string) (*models.SaleCustomer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, true
		}
	}
	return nil, false
}

func (r *SalesRepository) CreateCustomer(_ context.Context, name string) (*models.SaleCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &models.SaleCustomer{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: timeutil.Now(),
	}
	r.customers[c.ID] = c

	cp := *c
	return &cp, nil
}

func (r *SalesRepository) GetCustomer(_ context.Context, id string) (*models.SaleCustomer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *SalesRepository) ListCustomers(_ context.Context) ([]*models.SaleCustomer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.SaleCustomer, 0, len(r.customers))
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Reset clears all sales, customers and the invoice counter.
func (r *SalesRepository) Reset(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = make(map[string]*models.Sale)
	r.customers = make(map[string]*models.SaleCustomer)
	r.lastInvoiceNumber = 0
}

func sortSales(sales []*models.Sale) {
	sort.Slice(sales, func(i, j int) bool {
		if !sales[i].CreatedAt.Equal(sales[j].CreatedAt) {
			return sales[i].CreatedAt.Before(sales[j].CreatedAt)
		}
		return sales[i].InvoiceNumber < sales[j].InvoiceNumber
	})
}
