package handlers

import (
	"encoding/json"
	"net/http"

	"salon-backend/internal/models"
	"salon-backend/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func NewUserHandler(s *services.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// UpdateCredentials rotates the username/password of either account.
// Admin-only at the route level.
func (h *UserHandler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Service.UpdateCredentials(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
