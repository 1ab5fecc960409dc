package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sync"

	"github.com/jung-kurt/gofpdf/v2"

	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
	"salon-backend/internal/timeutil"
)

// SalesReportData aggregates completed sales over a date range.
type SalesReportData struct {
	StartDate      string                           `json:"start_date"`
	EndDate        string                           `json:"end_date"`
	Count          int                              `json:"count"`
	GrossSales     float64                          `json:"gross_sales"`
	TotalDiscounts float64                          `json:"total_discounts"`
	NetSales       float64                          `json:"net_sales"`
	PaymentTotals  map[models.PaymentMethod]float64 `json:"payment_totals"`
	Sales          []*models.Sale                   `json:"sales"`
}

// CreditsReportData aggregates non-cancelled credits opened in a date range
// plus the payments collected in that range.
type CreditsReportData struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Count          int     `json:"count"`
	TotalIssued    float64 `json:"total_issued"`
	TotalPending   float64 `json:"total_pending"`
	TotalCollected float64 `json:"total_collected"`
}

// CategoryTotal is one expense category's share of a report.
type CategoryTotal struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

// ExpensesReportData aggregates expenses over a date range.
type ExpensesReportData struct {
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	Count      int              `json:"count"`
	Total      float64          `json:"total"`
	Average    float64          `json:"average"`
	ByCategory []*CategoryTotal `json:"by_category"`
}

// InventoryReportData is a snapshot valuation of current stock.
type InventoryReportData struct {
	ProductCount   int               `json:"product_count"`
	TotalCostValue float64           `json:"total_cost_value"`
	TotalSaleValue float64           `json:"total_sale_value"`
	LowStock       []*models.Product `json:"low_stock"`
}

// FinancialSummaryData is the cross-ledger profit and loss view. Revenue is
// net sales plus the collected portion of credits; margins divide by revenue
// and report zero when revenue is zero.
type FinancialSummaryData struct {
	StartDate         string                           `json:"start_date"`
	EndDate           string                           `json:"end_date"`
	GrossSales        float64                          `json:"gross_sales"`
	TotalDiscounts    float64                          `json:"total_discounts"`
	NetSales          float64                          `json:"net_sales"`
	CreditsIssued     float64                          `json:"credits_issued"`
	CreditsPending    float64                          `json:"credits_pending"`
	CreditsCollected  float64                          `json:"credits_collected"`
	TotalRevenue      float64                          `json:"total_revenue"`
	CostOfGoods       float64                          `json:"cost_of_goods"`
	GrossProfit       float64                          `json:"gross_profit"`
	OperatingExpenses float64                          `json:"operating_expenses"`
	NetProfit         float64                          `json:"net_profit"`
	GrossMarginPct    float64                          `json:"gross_margin_pct"`
	NetMarginPct      float64                          `json:"net_margin_pct"`
	ExpenseRatioPct   float64                          `json:"expense_ratio_pct"`
	PaymentTotals     map[models.PaymentMethod]float64 `json:"payment_totals"`
}

// CustomerStatementData holds everything printed on one credit customer's
// account statement.
type CustomerStatementData struct {
	Customer    *models.CreditCustomer
	Credits     []*models.Credit
	Payments    []*models.CreditPayment
	TotalIssued float64
	TotalPaid   float64
	Balance     float64
}

// ReportService recomputes every report from the ledgers on demand. Nothing
// is cached; the ledgers are the only source of truth.
type ReportService struct {
	InventoryRepo *repositories.InventoryRepository
	SalesRepo     *repositories.SalesRepository
	CreditRepo    *repositories.CreditRepository
	ExpenseRepo   *repositories.ExpenseRepository
}

func NewReportService(
	inventoryRepo *repositories.InventoryRepository,
	salesRepo *repositories.SalesRepository,
	creditRepo *repositories.CreditRepository,
	expenseRepo *repositories.ExpenseRepository,
) *ReportService {
	return &ReportService{
		InventoryRepo: inventoryRepo,
		SalesRepo:     salesRepo,
		CreditRepo:    creditRepo,
		ExpenseRepo:   expenseRepo,
	}
}

// ValidateRange checks a YYYY-MM-DD date range.
func ValidateRange(start, end string) error {
	if _, err := timeutil.ParseDate(start); err != nil {
		return fmt.Errorf("%w: start %q", ErrInvalidDateRange, start)
	}
	if _, err := timeutil.ParseDate(end); err != nil {
		return fmt.Errorf("%w: end %q", ErrInvalidDateRange, end)
	}
	if start > end {
		return fmt.Errorf("%w: start %s after end %s", ErrInvalidDateRange, start, end)
	}
	return nil
}

func (s *ReportService) SalesReport(ctx context.Context, start, end string) (*SalesReportData, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	sales, err := s.SalesRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	data := &SalesReportData{
		StartDate:     start,
		EndDate:       end,
		Count:         len(sales),
		PaymentTotals: make(map[models.PaymentMethod]float64),
		Sales:         sales,
	}
	for _, sale := range sales {
		data.GrossSales += sale.Subtotal
		data.TotalDiscounts += sale.Discount
		data.NetSales += sale.Total
		data.PaymentTotals[sale.PaymentMethod] += sale.Total
	}
	return data, nil
}

func (s *ReportService) CreditsReport(ctx context.Context, start, end string) (*CreditsReportData, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	credits, err := s.CreditRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.CreditRepo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	data := &CreditsReportData{StartDate: start, EndDate: end}
	for _, credit := range credits {
		if !timeutil.InRange(credit.CreatedAt, start, end) {
			continue
		}
		data.Count++
		data.TotalIssued += credit.Total
		data.TotalPending += credit.RemainingAmount
	}
	for _, payment := range payments {
		if payment.Voided || !timeutil.InRange(payment.Date, start, end) {
			continue
		}
		data.TotalCollected += payment.Amount
	}
	return data, nil
}

func (s *ReportService) ExpensesReport(ctx context.Context, start, end string) (*ExpensesReportData, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	expenses, err := s.ExpenseRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	categories, err := s.ExpenseRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	data := &ExpensesReportData{StartDate: start, EndDate: end, Count: len(expenses)}
	totals := make(map[string]float64)
	for _, e := range expenses {
		data.Total += e.Amount
		totals[e.CategoryID] += e.Amount
	}
	if data.Count > 0 {
		data.Average = data.Total / float64(data.Count)
	}
	for _, c := range categories {
		if total, ok := totals[c.ID]; ok {
			data.ByCategory = append(data.ByCategory, &CategoryTotal{
				CategoryID:   c.ID,
				CategoryName: names[c.ID],
				Total:        total,
			})
		}
	}
	return data, nil
}

func (s *ReportService) InventoryReport(ctx context.Context) (*InventoryReportData, error) {
	products, err := s.InventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.InventoryRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}

	data := &InventoryReportData{ProductCount: len(products), LowStock: lowStock}
	for _, p := range products {
		data.TotalCostValue += p.CostPrice * float64(p.Stock)
		data.TotalSaleValue += p.SalePrice * float64(p.Stock)
	}
	return data, nil
}

// FinancialSummary combines every ledger into a profit and loss statement
// for the range. Cancelled sales, cancelled credits and voided payments are
// invisible here, so cancelling a paid credit removes both its revenue and
// its payment totals in one move.
func (s *ReportService) FinancialSummary(ctx context.Context, start, end string) (*FinancialSummaryData, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	sales, err := s.SalesRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	credits, err := s.CreditRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.CreditRepo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ExpenseRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	products, err := s.InventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	costByProduct := make(map[string]float64, len(products))
	for _, p := range products {
		costByProduct[p.ID] = p.CostPrice
	}

	data := &FinancialSummaryData{
		StartDate:     start,
		EndDate:       end,
		PaymentTotals: make(map[models.PaymentMethod]float64),
	}

	for _, sale := range sales {
		data.GrossSales += sale.Subtotal
		data.TotalDiscounts += sale.Discount
		data.NetSales += sale.Total
		data.PaymentTotals[sale.PaymentMethod] += sale.Total
		for _, item := range sale.Items {
			data.CostOfGoods += costByProduct[item.ProductID] * float64(item.Quantity)
		}
	}

	for _, credit := range credits {
		if !timeutil.InRange(credit.CreatedAt, start, end) {
			continue
		}
		data.CreditsIssued += credit.Total
		data.CreditsPending += credit.RemainingAmount
	}
	data.CreditsCollected = data.CreditsIssued - data.CreditsPending

	for _, payment := range payments {
		if payment.Voided || !timeutil.InRange(payment.Date, start, end) {
			continue
		}
		data.PaymentTotals[payment.PaymentMethod] += payment.Amount
	}

	data.TotalRevenue = data.NetSales + data.CreditsCollected
	data.GrossProfit = data.TotalRevenue - data.CostOfGoods
	for _, e := range expenses {
		data.OperatingExpenses += e.Amount
	}
	data.NetProfit = data.GrossProfit - data.OperatingExpenses

	if data.TotalRevenue > 0 {
		data.GrossMarginPct = data.GrossProfit / data.TotalRevenue * 100
		data.NetMarginPct = data.NetProfit / data.TotalRevenue * 100
		data.ExpenseRatioPct = data.OperatingExpenses / data.TotalRevenue * 100
	}
	return data, nil
}

// CustomerStatement gathers one credit customer's account history.
func (s *ReportService) CustomerStatement(ctx context.Context, customerID string) (*CustomerStatementData, error) {
	customer, err := s.CreditRepo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	credits, err := s.CreditRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	data := &CustomerStatementData{Customer: customer, Credits: credits}
	for _, credit := range credits {
		if credit.Status == models.CreditCancelled {
			continue
		}
		data.TotalIssued += credit.Total
		data.Balance += credit.RemainingAmount

		payments, err := s.CreditRepo.PaymentsByCredit(ctx, credit.ID)
		if err != nil {
			continue
		}
		for _, p := range payments {
			if p.Voided {
				continue
			}
			data.Payments = append(data.Payments, p)
			data.TotalPaid += p.Amount
		}
	}
	return data, nil
}

// GenerateFinancialSummaryPDF renders the profit and loss statement.
func (s *ReportService) GenerateFinancialSummaryPDF(data *FinancialSummaryData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Salon - Financial Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Period: %s to %s", data.StartDate, data.EndDate), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Revenue", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, "Net sales", "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("%.2f", data.NetSales), "RB", 1, "R", false, 0, "")
	pdf.CellFormat(95, 7, "Credits collected", "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("%.2f", data.CreditsCollected), "RB", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 7, "Total revenue", "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("%.2f", data.TotalRevenue), "RB", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Profit", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	rows := [][2]string{
		{"Cost of goods sold", fmt.Sprintf("%.2f", data.CostOfGoods)},
		{"Gross profit", fmt.Sprintf("%.2f  (%.1f%%)", data.GrossProfit, data.GrossMarginPct)},
		{"Operating expenses", fmt.Sprintf("%.2f  (%.1f%%)", data.OperatingExpenses, data.ExpenseRatioPct)},
		{"Net profit", fmt.Sprintf("%.2f  (%.1f%%)", data.NetProfit, data.NetMarginPct)},
	}
	for _, row := range rows {
		pdf.CellFormat(95, 7, row[0], "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, row[1], "RB", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payments by Method", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, method := range []models.PaymentMethod{models.PaymentCash, models.PaymentCard, models.PaymentTransfer} {
		pdf.CellFormat(95, 7, string(method), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("%.2f", data.PaymentTotals[method]), "RB", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateStatementPDF renders a one-page account statement for one credit
// customer.
func (s *ReportService) GenerateStatementPDF(data *CustomerStatementData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Salon - Account Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", data.Customer.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Code: %s", data.Customer.Code), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", data.Customer.Phone), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Address: %s", data.Customer.Address), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Credits", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 7, "Invoice", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Opened", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Due", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Total", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Remaining", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Status", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, credit := range data.Credits {
		pdf.CellFormat(40, 6, credit.InvoiceNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, timeutil.DateString(credit.CreatedAt), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, timeutil.DateString(credit.DueDate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", credit.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", credit.RemainingAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, string(credit.Status), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	if data.Balance > 0 {
		pdf.SetFillColor(255, 220, 220)
	} else {
		pdf.SetFillColor(220, 255, 220)
	}
	pdf.CellFormat(190, 10, fmt.Sprintf("Issued: %.2f    Paid: %.2f    Balance: %.2f", data.TotalIssued, data.TotalPaid, data.Balance), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBulkStatementPDFs renders statements for every credit customer in
// parallel.
func (s *ReportService) GenerateBulkStatementPDFs(ctx context.Context) (map[string][]byte, error) {
	customers, err := s.CreditRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	type pdfResult struct {
		code string
		name string
		data []byte
		err  error
	}

	jobs := make(chan *models.CreditCustomer, len(customers))
	results := make(chan pdfResult, len(customers))

	var wg sync.WaitGroup
	numWorkers := 5
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for customer := range jobs {
				statement, err := s.CustomerStatement(ctx, customer.ID)
				if err != nil {
					results <- pdfResult{code: customer.Code, name: customer.Name, err: err}
					continue
				}
				pdfData, err := s.GenerateStatementPDF(statement)
				results <- pdfResult{code: customer.Code, name: customer.Name, data: pdfData, err: err}
			}
		}()
	}

	for _, customer := range customers {
		jobs <- customer
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	pdfs := make(map[string][]byte)
	for r := range results {
		if r.err == nil && r.data != nil {
			pdfs[fmt.Sprintf("%s_%s", r.code, r.name)] = r.data
		}
	}
	return pdfs, nil
}

// CreateStatementZip bundles the bulk statements into one ZIP download.
func (s *ReportService) CreateStatementZip(pdfs map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for filename, pdfData := range pdfs {
		fw, err := zw.Create(fmt.Sprintf("statement_%s.pdf", filename))
		if err != nil {
			continue
		}
		fw.Write(pdfData)
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateSalesCSV exports the sales of a range as CSV.
func (s *ReportService) GenerateSalesCSV(ctx context.Context, start, end string) ([]byte, error) {
	report, err := s.SalesReport(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"#", "Invoice", "Date", "Items", "Subtotal", "Discount", "Total", "Method"})
	for i, sale := range report.Sales {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			sale.InvoiceNumber,
			timeutil.DateString(sale.CreatedAt),
			fmt.Sprintf("%d", len(sale.Items)),
			fmt.Sprintf("%.2f", sale.Subtotal),
			fmt.Sprintf("%.2f", sale.Discount),
			fmt.Sprintf("%.2f", sale.Total),
			string(sale.PaymentMethod),
		})
	}
	w.Write([]string{"", "", "", "TOTAL", fmt.Sprintf("%.2f", report.GrossSales), fmt.Sprintf("%.2f", report.TotalDiscounts), fmt.Sprintf("%.2f", report.NetSales), ""})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateCreditsCSV exports the credits opened in a range as CSV.
func (s *ReportService) GenerateCreditsCSV(ctx context.Context, start, end string) ([]byte, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	credits, err := s.CreditRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.CreditRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"#", "Invoice", "Date", "Customer", "Due", "Total", "Remaining", "Status"})
	var totalIssued, totalPending float64
	row := 0
	for _, credit := range credits {
		if !timeutil.InRange(credit.CreatedAt, start, end) {
			continue
		}
		row++
		w.Write([]string{
			fmt.Sprintf("%d", row),
			credit.InvoiceNumber,
			timeutil.DateString(credit.CreatedAt),
			names[credit.CustomerID],
			timeutil.DateString(credit.DueDate),
			fmt.Sprintf("%.2f", credit.Total),
			fmt.Sprintf("%.2f", credit.RemainingAmount),
			string(credit.Status),
		})
		totalIssued += credit.Total
		totalPending += credit.RemainingAmount
	}
	w.Write([]string{"", "", "", "", "TOTAL", fmt.Sprintf("%.2f", totalIssued), fmt.Sprintf("%.2f", totalPending), ""})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateExpensesCSV exports the expenses of a range as CSV.
func (s *ReportService) GenerateExpensesCSV(ctx context.Context, start, end string) ([]byte, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	expenses, err := s.ExpenseRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	categories, err := s.ExpenseRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"#", "Date", "Category", "Description", "Amount"})
	var total float64
	for i, e := range expenses {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			timeutil.DateString(e.Date),
			names[e.CategoryID],
			e.Description,
			fmt.Sprintf("%.2f", e.Amount),
		})
		total += e.Amount
	}
	w.Write([]string{"", "", "", "TOTAL", fmt.Sprintf("%.2f", total)})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateInventoryCSV exports the current product catalog as CSV.
func (s *ReportService) GenerateInventoryCSV(ctx context.Context) ([]byte, error) {
	products, err := s.InventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"#", "Code", "Name", "Stock", "Min Stock", "Cost", "Price", "Status"})
	for i, p := range products {
		status := "OK"
		if p.Stock <= p.MinStock {
			status = "LOW"
		}
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			p.Code,
			p.Name,
			fmt.Sprintf("%d", p.Stock),
			fmt.Sprintf("%d", p.MinStock),
			fmt.Sprintf("%.2f", p.CostPrice),
			fmt.Sprintf("%.2f", p.SalePrice),
			status,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
