package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/security"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps domain errors onto HTTP statuses. Anything outside the
// domain taxonomy is a 500 with an opaque body; the detail goes to the log.
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	var unavailable *domain.VehicleUnavailableError
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidDateFormat),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrReturnBeforeStart):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRentalNotActive),
		errors.Is(err, domain.ErrRentalNotCancellable),
		errors.Is(err, domain.ErrPlateTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrNationalIDTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrVehicleHasActiveRentals),
		errors.Is(err, domain.ErrCustomerHasActiveRentals),
		errors.Is(err, domain.ErrRentalConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		return http.StatusUnauthorized
	case errors.As(err, &unavailable):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
