package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"salon-backend/internal/services"
	"salon-backend/internal/timeutil"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// rangeParams reads ?start= and ?end=, defaulting both to today.
func rangeParams(r *http.Request) (string, string) {
	today := timeutil.DateString(timeutil.Now())
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" {
		start = today
	}
	if end == "" {
		end = today
	}
	return start, end
}

func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	start, end := rangeParams(r)
	report, err := h.Service.SalesReport(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (h *ReportHandler) CreditsReport(w http.ResponseWriter, r *http.Request) {
	start, end := rangeParams(r)
	report, err := h.Service.CreditsReport(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (h *ReportHandler) ExpensesReport(w http.ResponseWriter, r *http.Request) {
	start, end := rangeParams(r)
	report, err := h.Service.ExpensesReport(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (h *ReportHandler) InventoryReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.InventoryReport(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (h *ReportHandler) FinancialSummary(w http.ResponseWriter, r *http.Request) {
	start, end := rangeParams(r)
	summary, err := h.Service.FinancialSummary(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// FinancialSummaryPDF downloads the profit and loss statement as PDF.
func (h *ReportHandler) FinancialSummaryPDF(w http.ResponseWriter, r *http.Request) {
	start, end := rangeParams(r)
	summary, err := h.Service.FinancialSummary(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pdfData, err := h.Service.GenerateFinancialSummaryPDF(summary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="summary_%s_%s.pdf"`, start, end))
	w.Write(pdfData)
}

// SalesCSV downloads the sales of a range as CSV.
func (h *ReportHandler) SalesCSV(w http.ResponseWriter, r *http.Request) {
	start, end := rangeParams(r)
	csvData, err := h.Service.GenerateSalesCSV(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="sales_%s_%s.csv"`, start, end))
	w.Write(csvData)
}

func (h *ReportHandler) CreditsCSV(w http.ResponseWriter, r *http.Request) {
	start, end := rangeParams(r)
	csvData, err := h.Service.GenerateCreditsCSV(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="credits_%s_%s.csv"`, start, end))
	w.Write(csvData)
}

func (h *ReportHandler) ExpensesCSV(w http.ResponseWriter, r *http.Request) {
	start, end := rangeParams(r)
	csvData, err := h.Service.GenerateExpensesCSV(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="expenses_%s_%s.csv"`, start, end))
	w.Write(csvData)
}

// InventoryCSV downloads the current catalog as CSV.
func (h *ReportHandler) InventoryCSV(w http.ResponseWriter, r *http.Request) {
	csvData, err := h.Service.GenerateInventoryCSV(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	w.Write(csvData)
}

// CustomerStatementPDF downloads one credit customer's account statement.
func (h *ReportHandler) CustomerStatementPDF(w http.ResponseWriter, r *http.Request) {
	statement, err := h.Service.CustomerStatement(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pdfData, err := h.Service.GenerateStatementPDF(statement)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="statement_%s.pdf"`, statement.Customer.Code))
	w.Write(pdfData)
}

// StatementsZip downloads a ZIP of every credit customer's statement.
func (h *ReportHandler) StatementsZip(w http.ResponseWriter, r *http.Request) {
	pdfs, err := h.Service.GenerateBulkStatementPDFs(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	zipData, err := h.Service.CreateStatementZip(pdfs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="statements.zip"`)
	w.Write(zipData)
}
