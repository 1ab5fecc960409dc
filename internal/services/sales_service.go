package services

import (
	"context"

	"salon-backend/internal/events"
	"salon-backend/internal/metrics"
	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
)

// SalesService records point-of-sale transactions. Creating a sale decrements
// stock for every line item; cancelling it restores exactly those decrements.
type SalesService struct {
	repo      *repositories.SalesRepository
	inventory *InventoryService
	guard     *StoreGuard
	hub       *events.Hub
}

func NewSalesService(repo *repositories.SalesRepository, inventory *InventoryService, guard *StoreGuard) *SalesService {
	return &SalesService{repo: repo, inventory: inventory, guard: guard}
}

func (s *SalesService) SetEventHub(hub *events.Hub) {
	s.hub = hub
}

func (s *SalesService) publish(eventType string, payload interface{}) {
	if s.hub != nil {
		s.hub.Publish(eventType, payload)
	}
}

// CreateSale records a sale at the counter. The customer is matched by name
// (case-insensitive) or created on the fly. Stock is decremented before the
// sale is written; if any line would go below zero nothing is applied.
func (s *SalesService) CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error) {
	s.guard.Lock()
	defer s.guard.Unlock()
	return s.createSaleLocked(ctx, req.CustomerName, req.Items, req.PaymentMethod, "")
}

// createSaleLocked is the shared path for counter sales and the mirrored
// sale minted when a credit is paid off. Callers must hold the guard.
// A mirrored sale (creditID != "") does not touch stock: the goods already
// left inventory when the credit was opened.
func (s *SalesService) createSaleLocked(ctx context.Context, customerName string, items []models.SaleItem, method models.PaymentMethod, creditID string) (*models.Sale, error) {
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	if creditID == "" {
		deltas := make([]models.StockDelta, 0, len(items))
		for _, item := range items {
			deltas = append(deltas, models.StockDelta{ProductID: item.ProductID, Quantity: -item.Quantity})
		}
		if err := s.inventory.AdjustStock(ctx, deltas); err != nil {
			return nil, err
		}
	}

	customer, ok := s.repo.FindCustomerByName(ctx, customerName)
	if !ok {
		created, err := s.repo.CreateCustomer(ctx, customerName)
		if err != nil {
			return nil, err
		}
		customer = created
	}

	var subtotal, discount float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		discount += item.Discount
	}

	sale := &models.Sale{
		CustomerID:    customer.ID,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         subtotal - discount,
		PaymentMethod: method,
		CreditID:      creditID,
	}
	sale, err := s.repo.Create(ctx, sale)
	if err != nil {
		return nil, err
	}

	metrics.SalesTotal.Inc()
	s.publish("sale.created", sale)
	return sale, nil
}

// CancelSale voids a sale and restores the stock it consumed. Cancelling a
// missing or already-cancelled sale is a silent no-op. Mirrored sales never
// consumed stock, so cancelling one restores nothing.
func (s *SalesService) CancelSale(ctx context.Context, id, reason string) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	sale, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil
	}
	if sale.Status == models.SaleCancelled {
		return nil
	}

	if sale.CreditID == "" {
		deltas := make([]models.StockDelta, 0, len(sale.Items))
		for _, item := range sale.Items {
			deltas = append(deltas, models.StockDelta{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		if err := s.inventory.AdjustStock(ctx, deltas); err != nil {
			return err
		}
	}

	cancelled, ok := s.repo.Cancel(ctx, id, reason)
	if ok {
		s.publish("sale.cancelled", cancelled)
	}
	return nil
}

// voidByCreditLocked flips every completed sale mirrored from the given
// credit to cancelled. No stock moves; mirrored sales never decremented any.
// Callers must hold the guard.
func (s *SalesService) voidByCreditLocked(ctx context.Context, creditID, reason string) {
	for _, sale := range s.repo.VoidByCredit(ctx, creditID, reason) {
		s.publish("sale.voided", sale)
	}
}

func (s *SalesService) GetSale(ctx context.Context, id string) (*models.Sale, error) {
	return s.repo.Get(ctx, id)
}

func (s *SalesService) ListSales(ctx context.Context) ([]*models.Sale, error) {
	return s.repo.List(ctx)
}

func (s *SalesService) ActiveSales(ctx context.Context) ([]*models.Sale, error) {
	return s.repo.ListActive(ctx)
}

func (s *SalesService) SalesByDateRange(ctx context.Context, start, end string) ([]*models.Sale, error) {
	return s.repo.ListByDateRange(ctx, start, end)
}

func (s *SalesService) ListCustomers(ctx context.Context) ([]*models.SaleCustomer, error) {
	return s.repo.ListCustomers(ctx)
}
