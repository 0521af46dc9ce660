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

// DebtService defines the behavior needed by DebtHandler.
type DebtService interface {
	CreateDebt(ctx context.Context, input usecase.CreateDebtInput) (*domain.Debt, error)
	GetDebt(ctx context.Context, userID, id string) (*domain.Debt, error)
	ListDebts(ctx context.Context, input usecase.ListDebtsInput) ([]*domain.Debt, error)
	UpdateDebt(ctx context.Context, input usecase.UpdateDebtInput) (*domain.Debt, error)
	DeleteDebt(ctx context.Context, userID, id string) error
}

// DebtHandler handles debt-related HTTP requests.
type DebtHandler struct {
	debtUC DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtUC DebtService) *DebtHandler {
	return &DebtHandler{debtUC: debtUC}
}

// Create creates a new debt.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.CreateDebt(r.Context(), req.ToUseCaseInput(requestUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create debt", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DebtFromDomain(debt))
}

// Get retrieves a debt by ID.
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	debt, err := h.debtUC.GetDebt(r.Context(), requestUserID(r), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get debt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// List lists the user's debts.
func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	debts, err := h.debtUC.ListDebts(r.Context(), usecase.ListDebtsInput{
		UserID: requestUserID(r),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list debts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDebtsResponse{
		Debts: dto.DebtsFromDomain(debts),
		Total: int64(len(debts)),
	})
}

// Update updates a debt's terms.
func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	var req dto.UpdateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.UpdateDebt(r.Context(), req.ToUseCaseInput(requestUserID(r), id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update debt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// Delete removes a debt.
func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	if err := h.debtUC.DeleteDebt(r.Context(), requestUserID(r), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete debt", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
