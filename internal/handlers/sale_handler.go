package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"salon-backend/internal/models"
	"salon-backend/internal/services"
)

type SaleHandler struct {
	Service *services.SalesService
}

func NewSaleHandler(s *services.SalesService) *SaleHandler {
	return &SaleHandler{Service: s}
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.CreateSale(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sale)
}

func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.Service.GetSale(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sale)
}

// CancelSale voids a sale and restores its stock. Cancelling a missing or
// already-cancelled sale still returns 204.
func (h *SaleHandler) CancelSale(w http.ResponseWriter, r *http.Request) {
	var req models.CancelSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.CancelSale(r.Context(), mux.Vars(r)["id"], req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSales returns every sale; ?active=true narrows to completed ones, and
// ?start=YYYY-MM-DD&end=YYYY-MM-DD filters by creation date.
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		sales []*models.Sale
		err   error
	)
	switch {
	case q.Get("start") != "" || q.Get("end") != "":
		start, end := q.Get("start"), q.Get("end")
		if err := services.ValidateRange(start, end); err != nil {
			writeServiceError(w, err)
			return
		}
		sales, err = h.Service.SalesByDateRange(r.Context(), start, end)
	case q.Get("active") == "true":
		sales, err = h.Service.ActiveSales(r.Context())
	default:
		sales, err = h.Service.ListSales(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sales)
}

func (h *SaleHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customers)
}
