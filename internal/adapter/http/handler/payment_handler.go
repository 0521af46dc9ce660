package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/debtwise/payoff/internal/adapter/http/dto"
	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/usecase"
)

// PaymentService defines the behavior needed by PaymentHandler.
type PaymentService interface {
	RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (*domain.Payment, error)
	GetPayment(ctx context.Context, userID, id string) (*domain.Payment, error)
	ListPayments(ctx context.Context, userID, debtID string, limit, offset int) ([]*domain.Payment, error)
}

// PaymentHandler handles payment-related HTTP requests.
type PaymentHandler struct {
	paymentUC PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentUC PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Record applies a payment to a debt.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "id")
	if debtID == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payment, err := h.paymentUC.RecordPayment(r.Context(), req.ToUseCaseInput(requestUserID(r), debtID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record payment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PaymentFromDomain(payment))
}

// Get retrieves a payment by ID.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "paymentID")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payment ID", "")
		return
	}

	payment, err := h.paymentUC.GetPayment(r.Context(), requestUserID(r), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get payment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(payment))
}

// ListByDebt lists the payments recorded against a debt.
func (h *PaymentHandler) ListByDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "id")
	if debtID == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	payments, err := h.paymentUC.ListPayments(r.Context(), requestUserID(r), debtID, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentsFromDomain(payments))
}
