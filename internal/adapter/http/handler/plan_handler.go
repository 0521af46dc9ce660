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

// PlanService defines the behavior needed by PlanHandler.
type PlanService interface {
	ComputeBreakdown(input usecase.BreakdownInput) (domain.PaymentBreakdown, error)
	EstimateDebtPayoff(ctx context.Context, userID, debtID string) (domain.PayoffEstimate, error)
	ProjectTimeline(ctx context.Context, input usecase.ProjectTimelineInput) (domain.Timeline, error)
	ComparePlans(ctx context.Context, input usecase.ComparePlansInput) (domain.StrategyComparison, error)
}

// PlanHandler handles payoff planning HTTP requests.
type PlanHandler struct {
	planUC PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planUC PlanService) *PlanHandler {
	return &PlanHandler{planUC: planUC}
}

// Breakdown splits a hypothetical payment into interest and principal.
func (h *PlanHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	var req dto.BreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	breakdown, err := h.planUC.ComputeBreakdown(req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute breakdown", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BreakdownFromDomain(breakdown))
}

// Payoff estimates how long minimum payments take to clear one debt.
func (h *PlanHandler) Payoff(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "id")
	if debtID == "" {
		writeError(w, http.StatusBadRequest, "missing debt ID", "")
		return
	}

	estimate, err := h.planUC.EstimateDebtPayoff(r.Context(), requestUserID(r), debtID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to estimate payoff", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayoffEstimateFromDomain(estimate))
}

// Timeline projects the user's full debt set month by month.
func (h *PlanHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	var req dto.TimelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(requestUserID(r))
	if err != nil {
		writeError(w, mapDomainError(err), "invalid strategy", err.Error())
		return
	}

	timeline, err := h.planUC.ProjectTimeline(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to project timeline", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TimelineFromDomain(timeline))
}

// Compare runs avalanche and snowball and recommends the cheaper one.
func (h *PlanHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req dto.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	comparison, err := h.planUC.ComparePlans(r.Context(), req.ToUseCaseInput(requestUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compare strategies", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ComparisonFromDomain(comparison))
}
