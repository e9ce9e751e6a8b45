package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"tajer-be/internal/merchant"
	"tajer-be/internal/order"
	"tajer-be/internal/settings"
	"tajer-be/internal/wallet"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain sentinel errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, settings.ErrCompanyNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrAlreadyProcessed),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrOrderTerminal),
		errors.Is(err, merchant.ErrEmailExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrUnknownStatus),
		errors.Is(err, wallet.ErrInvalidAmount),
		errors.Is(err, wallet.ErrInvalidType),
		errors.Is(err, wallet.ErrInvalidCategory),
		errors.Is(err, settings.ErrEmptyName):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, merchant.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
