package services

import (
	"context"
	"errors"
	"testing"

	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
)

type fixture struct {
	invRepo    *repositories.InventoryRepository
	salesRepo  *repositories.SalesRepository
	creditRepo *repositories.CreditRepository
	inventory  *InventoryService
	sales      *SalesService
	credits    *CreditService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		invRepo:    repositories.NewInventoryRepository(),
		salesRepo:  repositories.NewSalesRepository(),
		creditRepo: repositories.NewCreditRepository(),
	}
	guard := NewStoreGuard()
	f.inventory = NewInventoryService(f.invRepo)
	f.sales = NewSalesService(f.salesRepo, f.inventory, guard)
	f.credits = NewCreditService(f.creditRepo, f.inventory, f.sales, guard)
	return f
}

func (f *fixture) product(t *testing.T, code string, stock int, cost, price float64) *models.Product {
	t.Helper()
	p, err := f.inventory.CreateProduct(context.Background(), &models.CreateProductRequest{
		Code:      code,
		Name:      "Producto " + code,
		Category:  "2",
		Stock:     stock,
		MinStock:  1,
		CostPrice: cost,
		SalePrice: price,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func (f *fixture) stock(t *testing.T, productID string) int {
	t.Helper()
	p, err := f.inventory.GetProduct(context.Background(), productID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	return p.Stock
}

func TestCreateSaleDecrementsStockAndNumbersInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "SH-01", 10, 4, 9)

	sale, err := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerName: "Maria",
		Items: []models.SaleItem{
			{ProductID: p.ID, Quantity: 3, Price: 9, Discount: 2},
		},
		PaymentMethod: models.PaymentCash,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	if sale.InvoiceNumber != "V000001" {
		t.Errorf("invoice = %q, want V000001", sale.InvoiceNumber)
	}
	if sale.Subtotal != 27 || sale.Discount != 2 || sale.Total != 25 {
		t.Errorf("totals = %.2f/%.2f/%.2f, want 27/2/25", sale.Subtotal, sale.Discount, sale.Total)
	}
	if got := f.stock(t, p.ID); got != 7 {
		t.Errorf("stock = %d, want 7", got)
	}

	second, err := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerName:  "maria",
		Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 1, Price: 9}},
		PaymentMethod: models.PaymentCard,
	})
	if err != nil {
		t.Fatalf("second sale: %v", err)
	}
	if second.InvoiceNumber != "V000002" {
		t.Errorf("invoice = %q, want V000002", second.InvoiceNumber)
	}
	// Name match is case-insensitive, so no second customer appears.
	if second.CustomerID != sale.CustomerID {
		t.Errorf("expected the sale to reuse customer %s, got %s", sale.CustomerID, second.CustomerID)
	}
}

func TestCreateSaleRejectsOversell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "SH-01", 2, 4, 9)

	_, err := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerName:  "Maria",
		Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 3, Price: 9}},
		PaymentMethod: models.PaymentCash,
	})
	if !errors.Is(err, repositories.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}

	if got := f.stock(t, p.ID); got != 2 {
		t.Errorf("stock = %d, want 2 after rejected sale", got)
	}
	sales, _ := f.sales.ListSales(ctx)
	if len(sales) != 0 {
		t.Errorf("sales recorded = %d, want 0", len(sales))
	}
}

func TestCreateSaleRejectsUnknownPaymentMethod(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "SH-01", 5, 4, 9)

	_, err := f.sales.CreateSale(context.Background(), &models.CreateSaleRequest{
		CustomerName:  "Maria",
		Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 1, Price: 9}},
		PaymentMethod: "cheque",
	})
	if !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("err = %v, want ErrInvalidPaymentMethod", err)
	}
	if got := f.stock(t, p.ID); got != 5 {
		t.Errorf("stock = %d, want untouched 5", got)
	}
}

func TestCancelSaleRestoresStockOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "SH-01", 10, 4, 9)

	sale, err := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerName:  "Maria",
		Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 3, Price: 9}},
		PaymentMethod: models.PaymentCash,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if got := f.stock(t, p.ID); got != 7 {
		t.Fatalf("stock = %d, want 7", got)
	}

	if err := f.sales.CancelSale(ctx, sale.ID, "wrong items"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := f.stock(t, p.ID); got != 10 {
		t.Errorf("stock = %d, want 10 after cancel", got)
	}

	// Repeat cancellation must not restore again.
	if err := f.sales.CancelSale(ctx, sale.ID, "again"); err != nil {
		t.Fatalf("repeat cancel: %v", err)
	}
	if got := f.stock(t, p.ID); got != 10 {
		t.Errorf("stock = %d, want 10 after repeat cancel", got)
	}

	cancelled, err := f.sales.GetSale(ctx, sale.ID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if cancelled.Status != models.SaleCancelled || cancelled.CancellationReason != "wrong items" {
		t.Errorf("sale = %+v, want cancelled with first reason kept", cancelled)
	}
}

func TestCancelSaleMissingIsNoOp(t *testing.T) {
	f := newFixture(t)
	if err := f.sales.CancelSale(context.Background(), "ghost", "n/a"); err != nil {
		t.Fatalf("cancel missing sale: %v", err)
	}
}

func TestCancelledSalesLeaveReportsAndActiveLists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "SH-01", 10, 4, 9)

	keep, _ := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerName:  "Ana",
		Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 1, Price: 9}},
		PaymentMethod: models.PaymentCash,
	})
	gone, _ := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerName:  "Luz",
		Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 1, Price: 9}},
		PaymentMethod: models.PaymentCash,
	})
	if err := f.sales.CancelSale(ctx, gone.ID, "test"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	active, _ := f.sales.ActiveSales(ctx)
	if len(active) != 1 || active[0].ID != keep.ID {
		t.Fatalf("active = %v, want only %s", active, keep.InvoiceNumber)
	}

	all, _ := f.sales.ListSales(ctx)
	if len(all) != 2 {
		t.Errorf("full ledger = %d sales, want 2 (cancelled kept)", len(all))
	}
}
