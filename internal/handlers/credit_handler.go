package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"salon-backend/internal/models"
	"salon-backend/internal/services"
)

type CreditHandler struct {
	Service *services.CreditService
}

func NewCreditHandler(s *services.CreditService) *CreditHandler {
	return &CreditHandler{Service: s}
}

func (h *CreditHandler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	credit, err := h.Service.CreateCredit(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(credit)
}

func (h *CreditHandler) GetCredit(w http.ResponseWriter, r *http.Request) {
	credit, err := h.Service.GetCredit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(credit)
}

// ListCredits returns all credits; ?active=true excludes cancelled ones and
// ?customer_id= filters by customer.
func (h *CreditHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		credits []*models.Credit
		err     error
	)
	switch {
	case q.Get("customer_id") != "":
		credits, err = h.Service.CreditsByCustomer(r.Context(), q.Get("customer_id"))
	case q.Get("active") == "true":
		credits, err = h.Service.ActiveCredits(r.Context())
	default:
		credits, err = h.Service.ListCredits(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(credits)
}

// AddPayment records a payment against a credit. Zero, negative and
// overpaying amounts are rejected; paying the balance to zero flips the
// credit to paid and mirrors it into the sales ledger.
func (h *CreditHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	payment, err := h.Service.AddPayment(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(payment)
}

func (h *CreditHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.PaymentsByCredit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}

// CancelCredit voids a credit: stock is restored, payments are voided and,
// if the credit had been paid off, the mirrored sale is voided too.
func (h *CreditHandler) CancelCredit(w http.ResponseWriter, r *http.Request) {
	var req models.CancelCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.CancelCredit(r.Context(), mux.Vars(r)["id"], req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CreditHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCreditCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	customer, err := h.Service.CreateCustomer(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(customer)
}

func (h *CreditHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Service.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customer)
}

// ListCustomers returns the registry; ?q= runs a case-insensitive name
// search that also matches code and phone.
func (h *CreditHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	var (
		customers []*models.CreditCustomer
		err       error
	)
	if query := r.URL.Query().Get("q"); query != "" {
		customers, err = h.Service.SearchCustomers(r.Context(), query)
	} else {
		customers, err = h.Service.ListCustomers(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customers)
}

// DeleteCustomer refuses with 409 while the customer has pending credits.
func (h *CreditHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
