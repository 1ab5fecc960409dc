package handlers

import (
	"errors"
	"net/http"

	"salon-backend/internal/repositories"
	"salon-backend/internal/services"
	"salon-backend/pkg/utils"
)

// writeServiceError maps domain errors onto HTTP status codes. Anything
// unrecognized is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "Not found")
	case errors.Is(err, repositories.ErrInsufficientStock),
		errors.Is(err, services.ErrCreditClosed),
		errors.Is(err, services.ErrCustomerHasPendingCredits):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidPaymentMethod),
		errors.Is(err, services.ErrInvalidPaymentAmount),
		errors.Is(err, services.ErrInvalidDateRange):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
