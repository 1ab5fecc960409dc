package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
	"salon-backend/internal/timeutil"
)

type reportFixture struct {
	*fixture
	expenseRepo *repositories.ExpenseRepository
	expenses    *ExpenseService
	reports     *ReportService
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	f := newFixture(t)
	expenseRepo := repositories.NewExpenseRepository()
	return &reportFixture{
		fixture:     f,
		expenseRepo: expenseRepo,
		expenses:    NewExpenseService(expenseRepo),
		reports:     NewReportService(f.invRepo, f.salesRepo, f.creditRepo, expenseRepo),
	}
}

func today() string {
	return timeutil.DateString(timeutil.Now())
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFinancialSummaryFormulas(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 20, 3, 5)

	// One direct sale: subtotal 10, discount 1, total 9, COGS 6.
	if _, err := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerName:  "Maria",
		Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 2, Price: 5, Discount: 1}},
		PaymentMethod: models.PaymentCash,
	}); err != nil {
		t.Fatalf("sale: %v", err)
	}

	// One credit of 10 with a partial payment of 4.
	customer := f.creditCustomer(t, "CL-001", "Rosa")
	credit := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 2, Price: 5}})
	if _, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        4,
		PaymentMethod: models.PaymentCash,
	}); err != nil {
		t.Fatalf("payment: %v", err)
	}

	// One operating expense of 2.
	if _, err := f.expenses.CreateExpense(ctx, &models.CreateExpenseRequest{
		CategoryID:  "1",
		Description: "Luz",
		Amount:      2,
		Date:        today(),
	}); err != nil {
		t.Fatalf("expense: %v", err)
	}

	summary, err := f.reports.FinancialSummary(ctx, today(), today())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"net sales", summary.NetSales, 9},
		{"credits issued", summary.CreditsIssued, 10},
		{"credits pending", summary.CreditsPending, 6},
		{"credits collected", summary.CreditsCollected, 4},
		{"total revenue", summary.TotalRevenue, 13},
		{"cost of goods", summary.CostOfGoods, 6},
		{"gross profit", summary.GrossProfit, 7},
		{"operating expenses", summary.OperatingExpenses, 2},
		{"net profit", summary.NetProfit, 5},
		{"gross margin", summary.GrossMarginPct, 7.0 / 13.0 * 100},
		{"net margin", summary.NetMarginPct, 5.0 / 13.0 * 100},
		{"expense ratio", summary.ExpenseRatioPct, 2.0 / 13.0 * 100},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	// Payment totals mix direct sales and credit payments by method.
	if got := summary.PaymentTotals[models.PaymentCash]; !approx(got, 13) {
		t.Errorf("cash total = %v, want 13 (9 sale + 4 payment)", got)
	}
}

func TestFinancialSummaryZeroRevenueGuard(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	if _, err := f.expenses.CreateExpense(ctx, &models.CreateExpenseRequest{
		CategoryID:  "2",
		Description: "Salario",
		Amount:      50,
		Date:        today(),
	}); err != nil {
		t.Fatalf("expense: %v", err)
	}

	summary, err := f.reports.FinancialSummary(ctx, today(), today())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalRevenue != 0 || summary.NetProfit != -50 {
		t.Errorf("revenue/net = %v/%v, want 0/-50", summary.TotalRevenue, summary.NetProfit)
	}
	// Percentages stay at zero instead of dividing by zero.
	if summary.GrossMarginPct != 0 || summary.NetMarginPct != 0 || summary.ExpenseRatioPct != 0 {
		t.Errorf("margins = %v/%v/%v, want all 0", summary.GrossMarginPct, summary.NetMarginPct, summary.ExpenseRatioPct)
	}
}

func TestFinancialSummaryIgnoresCancelledAndVoided(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 20, 3, 5)

	sale, err := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerName:  "Maria",
		Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 2, Price: 5}},
		PaymentMethod: models.PaymentCash,
	})
	if err != nil {
		t.Fatalf("sale: %v", err)
	}
	if err := f.sales.CancelSale(ctx, sale.ID, "void test"); err != nil {
		t.Fatalf("cancel sale: %v", err)
	}

	customer := f.creditCustomer(t, "CL-001", "Rosa")
	credit := f.openCredit(t, customer.ID, []models.CreditItem{{ProductID: p.ID, Quantity: 2, Price: 5}})
	if _, err := f.credits.AddPayment(ctx, credit.ID, &models.CreatePaymentRequest{
		Amount:        10,
		PaymentMethod: models.PaymentCard,
	}); err != nil {
		t.Fatalf("payoff: %v", err)
	}
	if err := f.credits.CancelCredit(ctx, credit.ID, "void test"); err != nil {
		t.Fatalf("cancel credit: %v", err)
	}

	summary, err := f.reports.FinancialSummary(ctx, today(), today())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalRevenue != 0 {
		t.Errorf("revenue = %v, want 0 once everything is cancelled", summary.TotalRevenue)
	}
	if got := summary.PaymentTotals[models.PaymentCard]; got != 0 {
		t.Errorf("card total = %v, want 0 after payments voided", got)
	}
}

func TestSalesReportAggregates(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	p := f.product(t, "TN-01", 20, 3, 5)

	for _, method := range []models.PaymentMethod{models.PaymentCash, models.PaymentCash, models.PaymentTransfer} {
		if _, err := f.sales.CreateSale(ctx, &models.CreateSaleRequest{
			CustomerName:  "Maria",
			Items:         []models.SaleItem{{ProductID: p.ID, Quantity: 1, Price: 5}},
			PaymentMethod: method,
		}); err != nil {
			t.Fatalf("sale: %v", err)
		}
	}

	report, err := f.reports.SalesReport(ctx, today(), today())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.Count != 3 || !approx(report.NetSales, 15) {
		t.Errorf("count/net = %d/%v, want 3/15", report.Count, report.NetSales)
	}
	if !approx(report.PaymentTotals[models.PaymentCash], 10) || !approx(report.PaymentTotals[models.PaymentTransfer], 5) {
		t.Errorf("payment totals = %v, want cash 10 transfer 5", report.PaymentTotals)
	}
}

func TestValidateRangeRejectsMalformedDates(t *testing.T) {
	cases := []struct{ start, end string }{
		{"2026-13-01", "2026-12-31"},
		{"not-a-date", "2026-01-01"},
		{"2026-02-01", "2026-01-01"},
	}
	for _, c := range cases {
		if err := ValidateRange(c.start, c.end); !errors.Is(err, ErrInvalidDateRange) {
			t.Errorf("ValidateRange(%q, %q) = %v, want ErrInvalidDateRange", c.start, c.end, err)
		}
	}
	if err := ValidateRange("2026-01-01", "2026-12-31"); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
}

func TestExpensesReportGroupsByCategory(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	for _, e := range []struct {
		category string
		amount   float64
	}{
		{"1", 10},
		{"1", 5},
		{"2", 40},
	} {
		if _, err := f.expenses.CreateExpense(ctx, &models.CreateExpenseRequest{
			CategoryID:  e.category,
			Description: "gasto",
			Amount:      e.amount,
			Date:        today(),
		}); err != nil {
			t.Fatalf("expense: %v", err)
		}
	}

	report, err := f.reports.ExpensesReport(ctx, today(), today())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.Count != 3 || !approx(report.Total, 55) {
		t.Errorf("count/total = %d/%v, want 3/55", report.Count, report.Total)
	}
	byID := make(map[string]float64)
	for _, c := range report.ByCategory {
		byID[c.CategoryID] = c.Total
	}
	if !approx(byID["1"], 15) || !approx(byID["2"], 40) {
		t.Errorf("by category = %v, want 1:15 2:40", byID)
	}
}

func TestGenerateFinancialSummaryPDF(t *testing.T) {
	f := newReportFixture(t)
	summary, err := f.reports.FinancialSummary(context.Background(), today(), today())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	pdfData, err := f.reports.GenerateFinancialSummaryPDF(summary)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if len(pdfData) == 0 || string(pdfData[:5]) != "%PDF-" {
		t.Errorf("output does not look like a PDF (%d bytes)", len(pdfData))
	}
}
