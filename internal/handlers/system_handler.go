package handlers

import (
	"net/http"

	"salon-backend/internal/services"
	"salon-backend/pkg/utils"
)

type SystemHandler struct {
	Service *services.SystemService
}

func NewSystemHandler(s *services.SystemService) *SystemHandler {
	return &SystemHandler{Service: s}
}

// Reset wipes all ledgers back to the seeded defaults. Admin-only at the
// route level; appointments are left alone.
func (h *SystemHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.Service.ResetAll(r.Context())
	utils.JSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
