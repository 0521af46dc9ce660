package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff/internal/domain"
)

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Balance           decimal.Decimal `json:"balance"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MinimumPayment    decimal.Decimal `json:"minimum_payment"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// DebtFromDomain converts a domain debt to a response.
func DebtFromDomain(d *domain.Debt) *DebtResponse {
	return &DebtResponse{
		ID:                d.ID,
		Name:              d.Name,
		Balance:           d.Balance,
		AnnualRatePercent: d.AnnualRatePercent,
		MinimumPayment:    d.MinimumPayment,
		Active:            d.Active,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// DebtsFromDomain converts domain debts to responses.
func DebtsFromDomain(debts []*domain.Debt) []*DebtResponse {
	result := make([]*DebtResponse, len(debts))
	for i, d := range debts {
		result[i] = DebtFromDomain(d)
	}
	return result
}

// ListDebtsResponse wraps a page of debts.
type ListDebtsResponse struct {
	Debts []*DebtResponse `json:"debts"`
	Total int64           `json:"total"`
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID               string          `json:"id"`
	DebtID           string          `json:"debt_id"`
	Amount           decimal.Decimal `json:"amount"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	BalanceBefore    decimal.Decimal `json:"balance_before"`
	BalanceAfter     decimal.Decimal `json:"balance_after"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PaymentFromDomain converts a domain payment to a response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:               p.ID,
		DebtID:           p.DebtID,
		Amount:           p.Amount,
		InterestPortion:  p.InterestPortion,
		PrincipalPortion: p.PrincipalPortion,
		BalanceBefore:    p.BalanceBefore,
		BalanceAfter:     p.BalanceAfter,
		CreatedAt:        p.CreatedAt,
	}
}

// PaymentsFromDomain converts domain payments to responses.
func PaymentsFromDomain(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentFromDomain(p)
	}
	return result
}

// BreakdownResponse represents a single payment breakdown.
type BreakdownResponse struct {
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	NewBalance       decimal.Decimal `json:"new_balance"`
	IsFullPayoff     bool            `json:"is_full_payoff"`
}

// BreakdownFromDomain converts an engine breakdown to a response.
func BreakdownFromDomain(b domain.PaymentBreakdown) BreakdownResponse {
	return BreakdownResponse{
		InterestPortion:  b.InterestPortion,
		PrincipalPortion: b.PrincipalPortion,
		NewBalance:       b.NewBalance,
		IsFullPayoff:     b.IsFullPayoff,
	}
}

// PayoffEstimateResponse represents a minimum-payment payoff estimate.
// Months is meaningless when PaysOff is false: the debt never clears at
// its minimum payment.
type PayoffEstimateResponse struct {
	Months        int             `json:"months"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	PaysOff       bool            `json:"pays_off"`
}

// PayoffEstimateFromDomain converts an estimate to a response.
func PayoffEstimateFromDomain(e domain.PayoffEstimate) PayoffEstimateResponse {
	return PayoffEstimateResponse{
		Months:        e.Months,
		TotalInterest: e.TotalInterest,
		PaysOff:       e.PaysOff,
	}
}

// ProjectionPointResponse represents one month of a timeline.
type ProjectionPointResponse struct {
	Month              int             `json:"month"`
	TotalBalance       decimal.Decimal `json:"total_balance"`
	TotalPayment       decimal.Decimal `json:"total_payment"`
	TotalInterest      decimal.Decimal `json:"total_interest"`
	TotalPrincipal     decimal.Decimal `json:"total_principal"`
	CumulativePayments decimal.Decimal `json:"cumulative_payments"`
}

// TimelineResponse represents a projection timeline.
type TimelineResponse struct {
	Points    []ProjectionPointResponse `json:"points"`
	Completed bool                      `json:"completed"`
}

// TimelineFromDomain converts a timeline to a response.
func TimelineFromDomain(t domain.Timeline) TimelineResponse {
	points := make([]ProjectionPointResponse, len(t.Points))
	for i, p := range t.Points {
		points[i] = ProjectionPointResponse{
			Month:              p.Month,
			TotalBalance:       p.TotalBalance,
			TotalPayment:       p.TotalPayment,
			TotalInterest:      p.TotalInterest,
			TotalPrincipal:     p.TotalPrincipal,
			CumulativePayments: p.CumulativePayments,
		}
	}
	return TimelineResponse{
		Points:    points,
		Completed: t.Completed,
	}
}

// StrategyResultResponse represents a full simulation of one strategy.
type StrategyResultResponse struct {
	Months            int             `json:"months"`
	TotalInterestPaid decimal.Decimal `json:"total_interest_paid"`
	TotalPayments     decimal.Decimal `json:"total_payments"`
	PaidOff           bool            `json:"paid_off"`
}

// ComparisonResponse represents an avalanche/snowball comparison.
type ComparisonResponse struct {
	Avalanche   StrategyResultResponse `json:"avalanche"`
	Snowball    StrategyResultResponse `json:"snowball"`
	Recommended string                 `json:"recommended"`
	Savings     decimal.Decimal        `json:"savings"`
}

// ComparisonFromDomain converts a comparison to a response.
func ComparisonFromDomain(c domain.StrategyComparison) ComparisonResponse {
	return ComparisonResponse{
		Avalanche:   strategyResultFromDomain(c.Avalanche),
		Snowball:    strategyResultFromDomain(c.Snowball),
		Recommended: string(c.Recommended),
		Savings:     c.Savings,
	}
}

func strategyResultFromDomain(r domain.StrategyResult) StrategyResultResponse {
	return StrategyResultResponse{
		Months:            r.Months,
		TotalInterestPaid: r.TotalInterestPaid,
		TotalPayments:     r.TotalPayments,
		PaidOff:           r.PaidOff,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
