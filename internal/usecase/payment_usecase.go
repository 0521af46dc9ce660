package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/infrastructure/metrics"
)

// PaymentUseCase handles payment recording business logic.
type PaymentUseCase struct {
	txManager   TransactionManager
	debtRepo    DebtRepository
	paymentRepo PaymentRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	txManager TransactionManager,
	debtRepo DebtRepository,
	paymentRepo PaymentRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:   txManager,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
	}
}

// RecordPaymentInput represents input for recording a payment.
type RecordPaymentInput struct {
	UserID string
	DebtID string
	Amount decimal.Decimal
}

// RecordPayment applies a payment to a debt: the engine splits it into
// interest and principal, the payment row and updated balance are written
// in one transaction, and a payment-recorded event goes to the outbox.
// Transient serialization failures are retried.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if err := domain.ValidatePaymentAmount(input.Amount); err != nil {
		return nil, err
	}

	start := time.Now()

	var payment *domain.Payment
	err := uc.retrier.Retry(ctx, func() error {
		var err error
		payment, err = uc.recordPayment(ctx, input)
		return err
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.PaymentErrors.WithLabelValues(errorType(err)).Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsRecorded.Inc()
		uc.metrics.PaymentDuration.Observe(time.Since(start).Seconds())
		uc.metrics.PaymentAmount.Observe(payment.Amount.InexactFloat64())
		if payment.BalanceAfter.IsZero() {
			uc.metrics.DebtsPaidOff.Inc()
		}
	}

	return payment, nil
}

func (uc *PaymentUseCase) recordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	debt, err := uc.debtRepo.GetByIDForUpdate(ctx, tx, input.DebtID)
	if err != nil {
		return nil, err
	}

	if debt.UserID != input.UserID {
		return nil, domain.ErrDebtNotFound
	}
	if !debt.IsOpen() {
		return nil, domain.ErrDebtClosed
	}

	now := time.Now().UTC()
	breakdown := domain.ComputeBreakdown(debt.Balance, debt.AnnualRatePercent, input.Amount)

	payment := &domain.Payment{
		ID:               uc.idGen.Generate(),
		DebtID:           debt.ID,
		UserID:           debt.UserID,
		Amount:           breakdown.InterestPortion.Add(breakdown.PrincipalPortion),
		InterestPortion:  breakdown.InterestPortion,
		PrincipalPortion: breakdown.PrincipalPortion,
		BalanceBefore:    debt.Balance,
		BalanceAfter:     breakdown.NewBalance,
		CreatedAt:        now,
	}

	if err := uc.paymentRepo.Create(ctx, tx, payment); err != nil {
		return nil, err
	}

	if err := uc.debtRepo.UpdateBalance(ctx, tx, debt.ID, breakdown.NewBalance, now); err != nil {
		return nil, err
	}

	if err := uc.outboxRepo.Create(ctx, tx, uc.paymentRecordedEvent(payment, now)); err != nil {
		return nil, err
	}

	if breakdown.IsFullPayoff {
		if err := uc.outboxRepo.Create(ctx, tx, uc.debtPaidOffEvent(debt.ID, payment.ID, now)); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return payment, nil
}

func (uc *PaymentUseCase) paymentRecordedEvent(p *domain.Payment, now time.Time) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   p.DebtID,
		AggregateType: domain.AggregateTypeDebt,
		EventType:     domain.EventTypePaymentRecorded,
		Payload: map[string]any{
			"payment_id":        p.ID,
			"debt_id":           p.DebtID,
			"amount":            p.Amount.String(),
			"interest_portion":  p.InterestPortion.String(),
			"principal_portion": p.PrincipalPortion.String(),
			"balance_after":     p.BalanceAfter.String(),
		},
		CreatedAt: now,
	}
}

func (uc *PaymentUseCase) debtPaidOffEvent(debtID, paymentID string, now time.Time) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   debtID,
		AggregateType: domain.AggregateTypeDebt,
		EventType:     domain.EventTypeDebtPaidOff,
		Payload: map[string]any{
			"debt_id":    debtID,
			"payment_id": paymentID,
		},
		CreatedAt: now,
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrDebtNotFound):
		return "debt_not_found"
	case errors.Is(err, domain.ErrDebtClosed):
		return "debt_closed"
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrNegativePayment):
		return "invalid_amount"
	default:
		return "internal"
	}
}

// GetPayment retrieves a payment by ID, enforcing ownership.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, userID, id string) (*domain.Payment, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payment.UserID != userID {
		return nil, domain.ErrPaymentNotFound
	}

	return payment, nil
}

// ListPayments lists payments recorded against a debt.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, userID, debtID string, limit, offset int) ([]*domain.Payment, error) {
	debt, err := uc.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt.UserID != userID {
		return nil, domain.ErrDebtNotFound
	}

	limit, offset, _ = domain.ValidatePagination(limit, offset)
	return uc.paymentRepo.ListByDebt(ctx, debtID, limit, offset)
}
