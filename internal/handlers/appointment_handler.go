package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"salon-backend/internal/models"
	"salon-backend/internal/services"
)

type AppointmentHandler struct {
	Service *services.AppointmentService
}

func NewAppointmentHandler(s *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: s}
}

func (h *AppointmentHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	appointment, err := h.Service.Schedule(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req models.CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.Cancel(r.Context(), mux.Vars(r)["id"], req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List supports ?filter=active|today|upcoming, defaulting to everything.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		appointments []*models.Appointment
		err          error
	)
	switch r.URL.Query().Get("filter") {
	case "active":
		appointments, err = h.Service.ListActive(r.Context())
	case "today":
		appointments, err = h.Service.ListToday(r.Context())
	case "upcoming":
		appointments, err = h.Service.ListUpcoming(r.Context())
	default:
		appointments, err = h.Service.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(appointments)
}
