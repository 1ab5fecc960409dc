package services

import (
	"context"
	"fmt"

	"salon-backend/internal/events"
	"salon-backend/internal/metrics"
	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
)

// CreditService manages store credits (accounts receivable), their payments
// and the credit-context customer registry. Paying a credit down to zero
// mints a mirrored sale in the sales ledger, exactly once.
type CreditService struct {
	repo      *repositories.CreditRepository
	inventory *InventoryService
	sales     *SalesService
	guard     *StoreGuard
	hub       *events.Hub
}

func NewCreditService(repo *repositories.CreditRepository, inventory *InventoryService, sales *SalesService, guard *StoreGuard) *CreditService {
	return &CreditService{repo: repo, inventory: inventory, sales: sales, guard: guard}
}

func (s *CreditService) SetEventHub(hub *events.Hub) {
	s.hub = hub
}

func (s *CreditService) publish(eventType string, payload interface{}) {
	if s.hub != nil {
		s.hub.Publish(eventType, payload)
	}
}

// CreateCredit opens a credit and decrements stock for every item, the same
// movement a direct sale would make. The items leave inventory now; the
// money arrives later through payments.
func (s *CreditService) CreateCredit(ctx context.Context, req *models.CreateCreditRequest) (*models.Credit, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	deltas := make([]models.StockDelta, 0, len(req.Items))
	for _, item := range req.Items {
		deltas = append(deltas, models.StockDelta{ProductID: item.ProductID, Quantity: -item.Quantity})
	}
	if err := s.inventory.AdjustStock(ctx, deltas); err != nil {
		return nil, err
	}

	var total float64
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}

	credit := &models.Credit{
		CustomerID: req.CustomerID,
		Items:      req.Items,
		Total:      total,
		DueDate:    req.DueDate,
	}
	credit, err := s.repo.Create(ctx, credit)
	if err != nil {
		return nil, err
	}

	s.publish("credit.created", credit)
	return credit, nil
}

// AddPayment records a partial or full payment against a pending credit.
// A payment that is non-positive, exceeds the remaining balance, or targets
// a cancelled credit is rejected without side effects. When the balance
// reaches zero the credit flips to paid and a mirrored sale is created with
// the payment's method and no line discounts.
func (s *CreditService) AddPayment(ctx context.Context, creditID string, req *models.CreatePaymentRequest) (*models.CreditPayment, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	credit, err := s.repo.Get(ctx, creditID)
	if err != nil {
		return nil, err
	}
	if credit.Status == models.CreditCancelled {
		return nil, ErrCreditClosed
	}
	if req.Amount <= 0 || req.Amount > credit.RemainingAmount {
		return nil, fmt.Errorf("%w: %.2f against remaining %.2f", ErrInvalidPaymentAmount, req.Amount, credit.RemainingAmount)
	}
	if !req.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	payment := &models.CreditPayment{
		CreditID:      creditID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}
	payment, err = s.repo.InsertPayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	remaining := credit.RemainingAmount - req.Amount
	status := models.CreditPending
	if remaining <= 0 {
		remaining = 0
		status = models.CreditPaid
	}
	if err := s.repo.SetRemaining(ctx, creditID, remaining, status); err != nil {
		return nil, err
	}

	if status == models.CreditPaid {
		s.promoteLocked(ctx, credit, req.PaymentMethod)
	}

	s.publish("credit.payment", payment)
	return payment, nil
}

// promoteLocked mirrors a fully paid credit into the sales ledger. Stock is
// untouched; it moved when the credit was opened. If the customer record was
// deleted in the meantime the mirror is skipped and the credit stays paid.
func (s *CreditService) promoteLocked(ctx context.Context, credit *models.Credit, method models.PaymentMethod) {
	customer, err := s.repo.GetCustomer(ctx, credit.CustomerID)
	if err != nil {
		return
	}

	items := make([]models.SaleItem, 0, len(credit.Items))
	for _, item := range credit.Items {
		items = append(items, models.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Discount:  0,
		})
	}
	if _, err := s.sales.createSaleLocked(ctx, customer.Name, items, method, credit.ID); err != nil {
		return
	}

	metrics.CreditPromotions.Inc()
	s.publish("credit.paid", credit)
}

// CancelCredit voids a credit, restores the stock its items consumed and
// voids the payment trail. If the credit had been paid off, the mirrored
// sale is voided too so the revenue disappears from reports. Cancelling a
// missing or already-cancelled credit is a silent no-op.
func (s *CreditService) CancelCredit(ctx context.Context, id, reason string) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	credit, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil
	}
	if credit.Status == models.CreditCancelled {
		return nil
	}

	deltas := make([]models.StockDelta, 0, len(credit.Items))
	for _, item := range credit.Items {
		deltas = append(deltas, models.StockDelta{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if err := s.inventory.AdjustStock(ctx, deltas); err != nil {
		return err
	}

	if credit.Status == models.CreditPaid {
		s.sales.voidByCreditLocked(ctx, id, "credit "+credit.InvoiceNumber+" cancelled")
	}
	s.repo.VoidPayments(ctx, id)

	cancelled, ok := s.repo.Cancel(ctx, id, reason)
	if ok {
		s.publish("credit.cancelled", cancelled)
	}
	return nil
}

func (s *CreditService) GetCredit(ctx context.Context, id string) (*models.Credit, error) {
	return s.repo.Get(ctx, id)
}

func (s *CreditService) ListCredits(ctx context.Context) ([]*models.Credit, error) {
	return s.repo.List(ctx)
}

func (s *CreditService) ActiveCredits(ctx context.Context) ([]*models.Credit, error) {
	return s.repo.ListActive(ctx)
}

func (s *CreditService) CreditsByCustomer(ctx context.Context, customerID string) ([]*models.Credit, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *CreditService) PaymentsByCredit(ctx context.Context, creditID string) ([]*models.CreditPayment, error) {
	return s.repo.PaymentsByCredit(ctx, creditID)
}

func (s *CreditService) CreateCustomer(ctx context.Context, req *models.CreateCreditCustomerRequest) (*models.CreditCustomer, error) {
	customer, err := s.repo.CreateCustomer(ctx, req)
	if err != nil {
		return nil, err
	}
	s.publish("credit_customer.created", customer)
	return customer, nil
}

func (s *CreditService) GetCustomer(ctx context.Context, id string) (*models.CreditCustomer, error) {
	return s.repo.GetCustomer(ctx, id)
}

// DeleteCustomer removes a credit customer. Deletion is refused while the
// customer owes money on any pending credit; paid and cancelled history does
// not block it.
func (s *CreditService) DeleteCustomer(ctx context.Context, id string) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	if s.repo.HasPendingByCustomer(ctx, id) {
		return ErrCustomerHasPendingCredits
	}
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	s.publish("credit_customer.deleted", map[string]string{"id": id})
	return nil
}

func (s *CreditService) ListCustomers(ctx context.Context) ([]*models.CreditCustomer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *CreditService) SearchCustomers(ctx context.Context, query string) ([]*models.CreditCustomer, error) {
	return s.repo.SearchCustomers(ctx, query)
}
