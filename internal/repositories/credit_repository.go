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

// CreditRepository holds credits, credit-context customers, payments and the
// "C" invoice counter. Lifecycle rules (payment validation, promotion,
// cancellation cascade) live in the credit service; this type only guards
// the collections.
type CreditRepository struct {
	mu                sync.RWMutex
	credits           map[string]*models.Credit
	customers         map[string]*models.CreditCustomer
	payments          []*models.CreditPayment
	lastInvoiceNumber int
}

func NewCreditRepository() *CreditRepository {
	return &CreditRepository{
		credits:   make(map[string]*models.Credit),
		customers: make(map[string]*models.CreditCustomer),
	}
}

// Create fills in the credit's identity fields and stores it with
// status=pending and the remaining amount equal to the total.
func (r *CreditRepository) Create(_ context.Context, credit *models.Credit) (*models.Credit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeutil.Now()
	credit.ID = uuid.NewString()
	credit.InvoiceNumber = utils.NextInvoiceNumber("C", r.lastInvoiceNumber)
	r.lastInvoiceNumber++
	credit.Status = models.CreditPending
	credit.RemainingAmount = credit.Total
	credit.CreatedAt = now
	credit.UpdatedAt = now

	cp := *credit
	r.credits[credit.ID] = &cp

	return credit, nil
}

func (r *CreditRepository) Get(_ context.Context, id string) (*models.Credit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.credits[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// SetRemaining updates a credit's balance and status and stamps UpdatedAt.
func (r *CreditRepository) SetRemaining(_ context.Context, id string, remaining float64, status models.CreditStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.credits[id]
	if !ok {
		return ErrNotFound
	}
	c.RemainingAmount = remaining
	c.Status = status
	c.UpdatedAt = timeutil.Now()
	return nil
}

// Cancel flips a credit to cancelled with a zero balance. It reports false
// without touching anything when the credit is missing or already cancelled.
func (r *CreditRepository) Cancel(_ context.Context, id, reason string) (*models.Credit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.credits[id]
	if !ok || c.Status == models.CreditCancelled {
		return nil, false
	}

	now := timeutil.Now()
	c.Status = models.CreditCancelled
	c.RemainingAmount = 0
	c.CancellationReason = reason
	c.CancelledAt = &now
	c.UpdatedAt = now

	cp := *c
	return &cp, true
}

func (r *CreditRepository) List(_ context.Context) ([]*models.Credit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Credit, 0, len(r.credits))
	for _, c := range r.credits {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].InvoiceNumber < out[j].InvoiceNumber
	})
	return out, nil
}

// ListActive returns every credit that is not cancelled.
func (r *CreditRepository) ListActive(ctx context.Context) ([]*models.Credit, error) {
	all, _ := r.List(ctx)

	out := make([]*models.Credit, 0, len(all))
	for _, c := range all {
		if c.Status != models.CreditCancelled {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CreditRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.Credit, error) {
	all, _ := r.List(ctx)

	out := make([]*models.Credit, 0)
	for _, c := range all {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// HasPendingByCustomer reports whether the customer has any credit still in
// pending status. Paid and cancelled credits do not count.
func (r *CreditRepository) HasPendingByCustomer(_ context.Context, customerID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.credits {
		if c.CustomerID == customerID && c.Status == models.CreditPending {
			return true
		}
	}
	return false
}

// InsertPayment appends a payment record, assigning its id and date.
func (r *CreditRepository) InsertPayment(_ context.Context, p *models.CreditPayment) (*models.CreditPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	p.Date = timeutil.Now()

	cp := *p
	r.payments = append(r.payments, &cp)

	return p, nil
}

// VoidPayments flags every payment of a credit as voided. Records are kept;
// reports skip voided payments.
func (r *CreditRepository) VoidPayments(_ context.Context, creditID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, p := range r.payments {
		if p.CreditID == creditID && !p.Voided {
			p.Voided = true
			n++
		}
	}
	return n
}

func (r *CreditRepository) ListPayments(_ context.Context) ([]*models.CreditPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.CreditPayment, 0, len(r.payments))
	for _, p := range r.payments {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *CreditRepository) PaymentsByCredit(ctx context.Context, creditID string) ([]*models.CreditPayment, error) {
	all, _ := r.ListPayments(ctx)

	out := make([]*models.CreditPayment, 0)
	for _, p := range all {
		if p.CreditID == creditID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *CreditRepository) CreateCustomer(_ context.Context, req *models.CreateCreditCustomerRequest) (*models.CreditCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &models.CreditCustomer{
		ID:        uuid.NewString(),
		Code:      req.Code,
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: timeutil.Now(),
	}
	r.customers[c.ID] = c

	cp := *c
	return &cp, nil
}

func (r *CreditRepository) GetCustomer(_ context.Context, id string) (*models.CreditCustomer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CreditRepository) DeleteCustomer(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.customers, id)
	return nil
}

func (r *CreditRepository) ListCustomers(_ context.Context) ([]*models.CreditCustomer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.CreditCustomer, 0, len(r.customers))
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// SearchCustomers matches the query as a substring of name (case-insensitive),
// code or phone.
func (r *CreditRepository) SearchCustomers(ctx context.Context, query string) ([]*models.CreditCustomer, error) {
	all, _ := r.ListCustomers(ctx)
	term := strings.ToLower(query)

	out := make([]*models.CreditCustomer, 0)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(c.Code, query) ||
			strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Reset clears credits, customers, payments and the invoice counter.
func (r *CreditRepository) Reset(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.credits = make(map[string]*models.Credit)
	r.customers = make(map[string]*models.CreditCustomer)
	r.payments = nil
	r.lastInvoiceNumber = 0
}
