package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/infrastructure/metrics"
)

// DebtUseCase handles debt management business logic.
type DebtUseCase struct {
	debtRepo DebtRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewDebtUseCase creates a new DebtUseCase.
func NewDebtUseCase(debtRepo DebtRepository, idGen IDGenerator, metrics *metrics.Metrics) *DebtUseCase {
	return &DebtUseCase{
		debtRepo: debtRepo,
		idGen:    idGen,
		metrics:  metrics,
	}
}

// CreateDebtInput represents input for creating a debt.
type CreateDebtInput struct {
	UserID            string
	Name              string
	Balance           decimal.Decimal
	AnnualRatePercent decimal.Decimal
	MinimumPayment    decimal.Decimal
}

// CreateDebt creates a new debt.
func (uc *DebtUseCase) CreateDebt(ctx context.Context, input CreateDebtInput) (*domain.Debt, error) {
	now := time.Now().UTC()

	debt := &domain.Debt{
		ID:                uc.idGen.Generate(),
		UserID:            input.UserID,
		Name:              input.Name,
		Balance:           input.Balance.Round(2),
		AnnualRatePercent: input.AnnualRatePercent,
		MinimumPayment:    input.MinimumPayment.Round(2),
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := domain.ValidateDebt(debt); err != nil {
		return nil, err
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DebtsCreated.Inc()
		uc.metrics.DebtOperations.WithLabelValues("create").Inc()
	}

	return debt, nil
}

// GetDebt retrieves a debt by ID, enforcing ownership.
func (uc *DebtUseCase) GetDebt(ctx context.Context, userID, id string) (*domain.Debt, error) {
	debt, err := uc.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if debt.UserID != userID {
		return nil, domain.ErrDebtNotFound
	}

	return debt, nil
}

// ListDebtsInput represents input for listing a user's debts.
type ListDebtsInput struct {
	UserID string
	Limit  int
	Offset int
}

// ListDebts lists a user's debts with pagination.
func (uc *DebtUseCase) ListDebts(ctx context.Context, input ListDebtsInput) ([]*domain.Debt, error) {
	limit, offset, _ := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.debtRepo.ListByUser(ctx, input.UserID, limit, offset)
}

// UpdateDebtInput represents input for updating a debt. Nil fields are
// left unchanged.
type UpdateDebtInput struct {
	UserID            string
	ID                string
	Name              *string
	AnnualRatePercent *decimal.Decimal
	MinimumPayment    *decimal.Decimal
}

// UpdateDebt updates a debt's terms. Balance changes go through payments,
// never through this path.
func (uc *DebtUseCase) UpdateDebt(ctx context.Context, input UpdateDebtInput) (*domain.Debt, error) {
	debt, err := uc.GetDebt(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		debt.Name = *input.Name
	}
	if input.AnnualRatePercent != nil {
		debt.AnnualRatePercent = *input.AnnualRatePercent
	}
	if input.MinimumPayment != nil {
		debt.MinimumPayment = input.MinimumPayment.Round(2)
	}
	debt.UpdatedAt = time.Now().UTC()

	if err := domain.ValidateDebt(debt); err != nil {
		return nil, err
	}

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DebtOperations.WithLabelValues("update").Inc()
	}

	return debt, nil
}

// DeleteDebt removes a debt.
func (uc *DebtUseCase) DeleteDebt(ctx context.Context, userID, id string) error {
	if _, err := uc.GetDebt(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.debtRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.DebtOperations.WithLabelValues("delete").Inc()
	}

	return nil
}
