package dto

import (
	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/usecase"
)

// CreateDebtRequest represents a request to create a debt.
type CreateDebtRequest struct {
	Name              string          `json:"name"`
	Balance           decimal.Decimal `json:"balance"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MinimumPayment    decimal.Decimal `json:"minimum_payment"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDebtRequest) ToUseCaseInput(userID string) usecase.CreateDebtInput {
	return usecase.CreateDebtInput{
		UserID:            userID,
		Name:              r.Name,
		Balance:           r.Balance,
		AnnualRatePercent: r.AnnualRatePercent,
		MinimumPayment:    r.MinimumPayment,
	}
}

// UpdateDebtRequest represents a request to update a debt's terms.
// Omitted fields are left unchanged.
type UpdateDebtRequest struct {
	Name              *string          `json:"name,omitempty"`
	AnnualRatePercent *decimal.Decimal `json:"annual_rate_percent,omitempty"`
	MinimumPayment    *decimal.Decimal `json:"minimum_payment,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateDebtRequest) ToUseCaseInput(userID, id string) usecase.UpdateDebtInput {
	return usecase.UpdateDebtInput{
		UserID:            userID,
		ID:                id,
		Name:              r.Name,
		AnnualRatePercent: r.AnnualRatePercent,
		MinimumPayment:    r.MinimumPayment,
	}
}

// RecordPaymentRequest represents a request to apply a payment to a debt.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPaymentRequest) ToUseCaseInput(userID, debtID string) usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		UserID: userID,
		DebtID: debtID,
		Amount: r.Amount,
	}
}

// BreakdownRequest represents a request for a single payment breakdown.
type BreakdownRequest struct {
	Balance           decimal.Decimal `json:"balance"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	Payment           decimal.Decimal `json:"payment"`
}

// ToUseCaseInput converts to use case input.
func (r *BreakdownRequest) ToUseCaseInput() usecase.BreakdownInput {
	return usecase.BreakdownInput{
		Balance:           r.Balance,
		AnnualRatePercent: r.AnnualRatePercent,
		Payment:           r.Payment,
	}
}

// TimelineRequest represents a request for a projection timeline.
type TimelineRequest struct {
	ExtraPayment decimal.Decimal `json:"extra_payment"`
	Strategy     string          `json:"strategy"`
	Months       int             `json:"months"`
}

// ToUseCaseInput converts to use case input.
func (r *TimelineRequest) ToUseCaseInput(userID string) (usecase.ProjectTimelineInput, error) {
	strategy, err := domain.ParseStrategy(r.Strategy)
	if err != nil {
		return usecase.ProjectTimelineInput{}, err
	}

	return usecase.ProjectTimelineInput{
		UserID:       userID,
		ExtraPayment: r.ExtraPayment,
		Strategy:     strategy,
		Months:       r.Months,
	}, nil
}

// CompareRequest represents a request for a strategy comparison.
type CompareRequest struct {
	ExtraPayment decimal.Decimal `json:"extra_payment"`
}

// ToUseCaseInput converts to use case input.
func (r *CompareRequest) ToUseCaseInput(userID string) usecase.ComparePlansInput {
	return usecase.ComparePlansInput{
		UserID:       userID,
		ExtraPayment: r.ExtraPayment,
	}
}

// RegisterRequest represents a request to register a user.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *LoginRequest) ToUseCaseInput() usecase.AuthenticateInput {
	return usecase.AuthenticateInput{
		Email:    r.Email,
		Password: r.Password,
	}
}
