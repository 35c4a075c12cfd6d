package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carebook-backend/internal/domain"
	"carebook-backend/internal/logger"
	"carebook-backend/internal/security"
	"carebook-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain and service errors onto HTTP statuses.
// Insufficient funds uses 402 so the app can route straight to the wallet
// screen.
func respondServiceError(w http.ResponseWriter, err error) {
	var ife *domain.InsufficientFundsError
	switch {
	case errors.As(err, &ife):
		respondJSON(w, http.StatusPaymentRequired, map[string]interface{}{
			"error":     err.Error(),
			"category":  ife.Category,
			"available": ife.Available,
		})
	case errors.Is(err, domain.ErrWalletNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBookingForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrListingInactive),
		errors.Is(err, service.ErrInvalidAmountSplit),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrMissingCategory),
		errors.Is(err, service.ErrScheduleInPast):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Unhandled service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
