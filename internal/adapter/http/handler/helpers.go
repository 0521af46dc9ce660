package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/debtwise/payoff/internal/adapter/http/dto"
	"github.com/debtwise/payoff/internal/adapter/http/middleware"
	"github.com/debtwise/payoff/internal/domain"
)

// anonymousUserID scopes data when auth is disabled; every request then
// acts on the same shared debt set.
const anonymousUserID = "anonymous"

// requestUserID resolves the acting user for a request.
func requestUserID(r *http.Request) string {
	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		return user.ID
	}
	return anonymousUserID
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrDebtNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDebtClosed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoDebts):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrUnknownStrategy),
		errors.Is(err, domain.ErrNegativeBalance),
		errors.Is(err, domain.ErrNegativeRate),
		errors.Is(err, domain.ErrNegativePayment),
		errors.Is(err, domain.ErrInvalidDebtName),
		errors.Is(err, domain.ErrRateTooHigh),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrTooManyDebts),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooWeak):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
