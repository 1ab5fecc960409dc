package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
)

func (f *fixture) creditCustomer(t *testing.T, code, name string) *models.CreditCustomer {
	t.Helper()
	c, err := f.credits.CreateCustomer(context.Background(), &models.CreateCreditCustomerRequest{
		Code:  code,
		Name:  name,
		Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("create credit customer: %v", err)
	}
	return c
}

func (f *fixture) openCredit(t *testing.T, customerID string, items []models.CreditItem) *models.Credit {
	t.Helper()
	credit, err := f.credits.CreateCredit(context.Background(), &models.CreateCreditRequest{
		CustomerID: customerID,
		Items:      items,
		DueDate:    time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("create credit: %v", err)
	}
	return credit
}

func TestCreateCreditDecrementsStockAndNumbersInvoice(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "TN-01", 10, 3, 5)
	customer := f.creditCustomer(t, "CL-001", "Rosa")

	credit := f.openCredit(t, customer.ID, []models.CreditItem{
		{ProductID: p.ID, Quantity: 2, Price: 5},
	})

	if credit.InvoiceNumber != "C000001" {
		t.Errorf("invoice = %q, want C000001", credit.InvoiceNumber)
	}
	if credit.Total != 10 || credit.RemainingAmount != 10 {
		t.Errorf("total/remaining = %.2f/%.2f, want 10/10", credit.Total, credit.RemainingAmount)
	}
	if credit.Status != models.CreditPending {
		t.Errorf("status = %q, want pending", credit.Status)
	}
	if got := f.stock(t, p.ID); got != 8 {
		t.Errorf("stock = %d, want 8", got)
	}
}

func TestAddPaymentRejectsBadAmounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 10, 3, 5)
	customer := f.creditCustomer(t, "CL-001", "Rosa")
	credit := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 2, Price: 5}})

	for _, amount := range []float64{0, -5, 10.01} {
		_, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
			Amount:        amount,
			PaymentMethod: models.PaymentCash,
		})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Errorf("amount %.2f: err = %v, want ErrInvalidPaymentAmount", amount, err)
		}
	}

	_, err := f.credits.AddPayment(ctx, "ghost", &models.CreatePaymentRequest{Amount: 1, PaymentMethod: models.PaymentCash})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("missing credit: err = %v, want ErrNotFound", err)
	}

	// Rejected payments leave the balance alone.
	got, _ := f.credits.GetCredit(ctx, credit.ID)
	if got.RemainingAmount != 10 {
		t.Errorf("remaining = %.2f, want 10", got.RemainingAmount)
	}
	payments, _ := f.credits.PaymentsByCredit(ctx, credit.ID)
	if len(payments) != 0 {
		t.Errorf("payments = %d, want 0", len(payments))
	}
}

func TestFullPayoffPromotesToSaleExactlyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 10, 3, 5)
	customer := f.creditCustomer(t, "CL-001", "Rosa")
	credit := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 2, Price: 5}})

	if _, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        4,
		PaymentMethod: models.PaymentCash,
	}); err != nil {
		t.Fatalf("partial payment: %v", err)
	}

	mid, _ := f.credits.GetCredit(ctx, credit.ID)
	if mid.Status != models.CreditPending || mid.RemainingAmount != 6 {
		t.Fatalf("after partial: %+v, want pending/6", mid)
	}
	sales, _ := f.sales.ListSales(ctx)
	if len(sales) != 0 {
		t.Fatalf("sales after partial payment = %d, want 0", len(sales))
	}

	if _, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        6,
		PaymentMethod: models.PaymentCard,
	}); err != nil {
		t.Fatalf("final payment: %v", err)
	}

	paid, _ := f.credits.GetCredit(ctx, credit.ID)
	if paid.Status != models.CreditPaid || paid.RemainingAmount != 0 {
		t.Fatalf("after payoff: %+v, want paid/0", paid)
	}

	sales, _ = f.sales.ListSales(ctx)
	if len(sales) != 1 {
		t.Fatalf("mirrored sales = %d, want exactly 1", len(sales))
	}
	mirror := sales[0]
	if mirror.CreditID != credit.ID {
		t.Errorf("mirror credit id = %q, want %q", mirror.CreditID, credit.ID)
	}
	if mirror.PaymentMethod != models.PaymentCard {
		t.Errorf("mirror method = %q, want the final payment's card", mirror.PaymentMethod)
	}
	if mirror.Total != 10 || mirror.Discount != 0 {
		t.Errorf("mirror total/discount = %.2f/%.2f, want 10/0", mirror.Total, mirror.Discount)
	}

	// The goods already left inventory when the credit opened; the mirror
	// must not consume them again.
	if got := f.stock(t, p.ID); got != 8 {
		t.Errorf("stock = %d, want 8 after promotion", got)
	}

	// Further payments bounce off the zero balance.
	if _, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        1,
		PaymentMethod: models.PaymentCash,
	}); !errors.Is(err, ErrInvalidPaymentAmount) {
		t.Errorf("payment on paid credit: err = %v, want ErrInvalidPaymentAmount", err)
	}
	sales, _ = f.sales.ListSales(ctx)
	if len(sales) != 1 {
		t.Errorf("mirrored sales = %d, want still 1", len(sales))
	}
}

func TestCancelPendingCreditRestoresStockAndVoidsPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 10, 3, 5)
	customer := f.creditCustomer(t, "CL-001", "Rosa")
	credit := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 3, Price: 5}})

	if _, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        5,
		PaymentMethod: models.PaymentCash,
	}); err != nil {
		t.Fatalf("payment: %v", err)
	}

	if err := f.credits.CancelCredit(ctx, credit.ID, "customer moved away"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, _ := f.credits.GetCredit(ctx, credit.ID)
	if got.Status != models.CreditCancelled || got.RemainingAmount != 0 {
		t.Errorf("credit = %+v, want cancelled/0", got)
	}
	if stock := f.stock(t, p.ID); stock != 10 {
		t.Errorf("stock = %d, want 10 restored", stock)
	}

	payments, _ := f.credits.PaymentsByCredit(ctx, credit.ID)
	if len(payments) != 1 || !payments[0].Voided {
		t.Errorf("payments = %+v, want the record kept but voided", payments)
	}

	// Re-cancelling changes nothing.
	if err := f.credits.CancelCredit(ctx, credit.ID, "again"); err != nil {
		t.Fatalf("repeat cancel: %v", err)
	}
	if stock := f.stock(t, p.ID); stock != 10 {
		t.Errorf("stock = %d, want 10 after repeat cancel", stock)
	}
}

func TestCancelPaidCreditVoidsMirroredSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 10, 3, 5)
	customer := f.creditCustomer(t, "CL-001", "Rosa")
	credit := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 2, Price: 5}})

	if _, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        10,
		PaymentMethod: models.PaymentTransfer,
	}); err != nil {
		t.Fatalf("payoff: %v", err)
	}

	if err := f.credits.CancelCredit(ctx, credit.ID, "returned goods"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if stock := f.stock(t, p.ID); stock != 10 {
		t.Errorf("stock = %d, want 10 restored exactly once", stock)
	}

	sales, _ := f.sales.ListSales(ctx)
	if len(sales) != 1 {
		t.Fatalf("sales = %d, want the mirror kept in the ledger", len(sales))
	}
	mirror := sales[0]
	if mirror.Status != models.SaleCancelled || !mirror.VoidedByCredit {
		t.Errorf("mirror = %+v, want cancelled and voided-by-credit", mirror)
	}

	active, _ := f.sales.ActiveSales(ctx)
	if len(active) != 0 {
		t.Errorf("active sales = %d, want 0", len(active))
	}
}

func TestPromotionSkippedWhenCustomerDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 10, 3, 5)
	customer := f.creditCustomer(t, "CL-001", "Rosa")
	credit := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 2, Price: 5}})

	// Paid and cancelled history does not block deletion, but a pending
	// credit does.
	if err := f.credits.DeleteCustomer(ctx, customer.ID); !errors.Is(err, ErrCustomerHasPendingCredits) {
		t.Fatalf("delete with pending credit: err = %v, want ErrCustomerHasPendingCredits", err)
	}

	if _, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        10,
		PaymentMethod: models.PaymentCash,
	}); err != nil {
		t.Fatalf("payoff: %v", err)
	}
	if err := f.credits.DeleteCustomer(ctx, customer.ID); err != nil {
		t.Fatalf("delete after payoff: %v", err)
	}

	// A later credit referencing the deleted customer still accepts payments
	// and flips to paid, but no mirror sale can be minted without a name.
	orphan := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 1, Price: 5}})
	if _, err := f.credits.AddPayment(ctx, orphan.ID, &models.CreatePaymentRequest{
		Amount:        5,
		PaymentMethod: models.PaymentCash,
	}); err != nil {
		t.Fatalf("orphan payoff: %v", err)
	}

	paid, _ := f.credits.GetCredit(ctx, orphan.ID)
	if paid.Status != models.CreditPaid {
		t.Errorf("orphan credit status = %q, want paid", paid.Status)
	}
	sales, _ := f.sales.ListSales(ctx)
	if len(sales) != 1 {
		t.Errorf("sales = %d, want only the first credit's mirror", len(sales))
	}
}

func TestCancelCreditOnPaidCreditRejectsNewPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 10, 3, 5)
	customer := f.creditCustomer(t, "CL-001", "Rosa")
	credit := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 2, Price: 5}})

	if err := f.credits.CancelCredit(ctx, credit.ID, "mistake"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        5,
		PaymentMethod: models.PaymentCash,
	})
	if !errors.Is(err, ErrCreditClosed) {
		t.Errorf("payment on cancelled credit: err = %v, want ErrCreditClosed", err)
	}
}
