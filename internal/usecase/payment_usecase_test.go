package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/usecase"
	"github.com/debtwise/payoff/internal/usecase/mocks"
)

func seedDebt(t *testing.T, repo *mocks.MockDebtRepository, userID, balance, rate, minimum string) *domain.Debt {
	t.Helper()
	debt := &domain.Debt{
		ID:                "debt-" + balance,
		UserID:            userID,
		Name:              "test debt",
		Balance:           mustDecimal(t, balance),
		AnnualRatePercent: mustDecimal(t, rate),
		MinimumPayment:    mustDecimal(t, minimum),
		Active:            true,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), debt); err != nil {
		t.Fatalf("failed to seed debt: %v", err)
	}
	return debt
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func newPaymentFixture() (*usecase.PaymentUseCase, *mocks.MockDebtRepository, *mocks.MockPaymentRepository, *mocks.MockOutboxRepository, *mocks.MockTransactionManager) {
	debtRepo := mocks.NewMockDebtRepository()
	paymentRepo := mocks.NewMockPaymentRepository()
	outboxRepo := mocks.NewMockOutboxRepository()
	txManager := &mocks.MockTransactionManager{}
	uc := usecase.NewPaymentUseCase(txManager, debtRepo, paymentRepo, outboxRepo, mocks.NewMockIDGenerator(), &mocks.MockRetrier{}, nil)
	return uc, debtRepo, paymentRepo, outboxRepo, txManager
}

func TestPaymentUseCase_RecordPayment(t *testing.T) {
	uc, debtRepo, _, outboxRepo, txManager := newPaymentFixture()
	debt := seedDebt(t, debtRepo, "user-1", "1000.00", "24", "100.00")

	payment, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		UserID: "user-1",
		DebtID: debt.ID,
		Amount: mustDecimal(t, "100.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !payment.InterestPortion.Equal(mustDecimal(t, "20.00")) {
		t.Errorf("expected interest 20.00, got %s", payment.InterestPortion)
	}
	if !payment.PrincipalPortion.Equal(mustDecimal(t, "80.00")) {
		t.Errorf("expected principal 80.00, got %s", payment.PrincipalPortion)
	}
	if !payment.BalanceAfter.Equal(mustDecimal(t, "920.00")) {
		t.Errorf("expected balance after 920.00, got %s", payment.BalanceAfter)
	}

	stored, err := debtRepo.GetByID(context.Background(), debt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.Balance.Equal(mustDecimal(t, "920.00")) {
		t.Errorf("expected stored balance 920.00, got %s", stored.Balance)
	}

	if txManager.LastTx == nil || !txManager.LastTx.Committed {
		t.Error("expected transaction to be committed")
	}
	if len(outboxRepo.Events) != 1 {
		t.Fatalf("expected 1 outbox event, got %d", len(outboxRepo.Events))
	}
	if outboxRepo.Events[0].EventType != domain.EventTypePaymentRecorded {
		t.Errorf("expected event type %q, got %q", domain.EventTypePaymentRecorded, outboxRepo.Events[0].EventType)
	}
}

func TestPaymentUseCase_RecordPayment_FullPayoffEmitsPaidOffEvent(t *testing.T) {
	uc, debtRepo, _, outboxRepo, _ := newPaymentFixture()
	debt := seedDebt(t, debtRepo, "user-1", "50.00", "12", "25.00")

	// 50 + 0.50 interest, overpay clears the debt
	payment, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		UserID: "user-1",
		DebtID: debt.ID,
		Amount: mustDecimal(t, "100.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !payment.BalanceAfter.IsZero() {
		t.Errorf("expected balance after 0, got %s", payment.BalanceAfter)
	}

	if len(outboxRepo.Events) != 2 {
		t.Fatalf("expected 2 outbox events, got %d", len(outboxRepo.Events))
	}
	if outboxRepo.Events[1].EventType != domain.EventTypeDebtPaidOff {
		t.Errorf("expected event type %q, got %q", domain.EventTypeDebtPaidOff, outboxRepo.Events[1].EventType)
	}
}

func TestPaymentUseCase_RecordPayment_Errors(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		debtID  string
		amount  string
		wantErr error
	}{
		{"zero amount", "user-1", "debt-1000.00", "0", domain.ErrInvalidAmount},
		{"negative amount", "user-1", "debt-1000.00", "-5", domain.ErrInvalidAmount},
		{"unknown debt", "user-1", "missing", "50", domain.ErrDebtNotFound},
		{"foreign debt", "intruder", "debt-1000.00", "50", domain.ErrDebtNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, debtRepo, _, _, _ := newPaymentFixture()
			seedDebt(t, debtRepo, "user-1", "1000.00", "24", "100.00")

			_, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
				UserID: tt.userID,
				DebtID: tt.debtID,
				Amount: mustDecimal(t, tt.amount),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPaymentUseCase_RecordPayment_ClosedDebt(t *testing.T) {
	uc, debtRepo, _, _, _ := newPaymentFixture()
	debt := seedDebt(t, debtRepo, "user-1", "0.00", "24", "100.00")

	_, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		UserID: "user-1",
		DebtID: debt.ID,
		Amount: mustDecimal(t, "50.00"),
	})
	if !errors.Is(err, domain.ErrDebtClosed) {
		t.Errorf("expected ErrDebtClosed, got %v", err)
	}
}

func TestPaymentUseCase_RecordPayment_RollsBackOnWriteFailure(t *testing.T) {
	uc, debtRepo, paymentRepo, outboxRepo, txManager := newPaymentFixture()
	debt := seedDebt(t, debtRepo, "user-1", "1000.00", "24", "100.00")

	paymentRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
		return errors.New("insert failed")
	}

	_, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		UserID: "user-1",
		DebtID: debt.ID,
		Amount: mustDecimal(t, "100.00"),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if txManager.LastTx == nil {
		t.Fatal("expected a transaction to have started")
	}
	if txManager.LastTx.Committed {
		t.Error("transaction must not commit after a write failure")
	}
	if !txManager.LastTx.RolledBack {
		t.Error("expected transaction rollback")
	}
	if len(outboxRepo.Events) != 0 {
		t.Errorf("expected no outbox events, got %d", len(outboxRepo.Events))
	}

	stored, getErr := debtRepo.GetByID(context.Background(), debt.ID)
	if getErr != nil {
		t.Fatalf("unexpected error: %v", getErr)
	}
	if !stored.Balance.Equal(mustDecimal(t, "1000.00")) {
		t.Errorf("balance must be unchanged, got %s", stored.Balance)
	}
}

func TestPaymentUseCase_RecordPayment_RetriesTransientFailures(t *testing.T) {
	debtRepo := mocks.NewMockDebtRepository()
	paymentRepo := mocks.NewMockPaymentRepository()
	outboxRepo := mocks.NewMockOutboxRepository()
	txManager := &mocks.MockTransactionManager{}

	attempts := 0
	retrier := &mocks.MockRetrier{
		RetryFunc: func(ctx context.Context, operation func() error) error {
			for {
				attempts++
				if err := operation(); err == nil || attempts >= 3 {
					return err
				}
			}
		},
	}

	uc := usecase.NewPaymentUseCase(txManager, debtRepo, paymentRepo, outboxRepo, mocks.NewMockIDGenerator(), retrier, nil)
	debt := seedDebt(t, debtRepo, "user-1", "1000.00", "24", "100.00")

	failures := 2
	paymentRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
		if failures > 0 {
			failures--
			return errors.New("deadlock detected")
		}
		return nil
	}

	_, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		UserID: "user-1",
		DebtID: debt.ID,
		Amount: mustDecimal(t, "100.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestPaymentUseCase_ListPayments_EnforcesOwnership(t *testing.T) {
	uc, debtRepo, _, _, _ := newPaymentFixture()
	debt := seedDebt(t, debtRepo, "user-1", "1000.00", "24", "100.00")

	if _, err := uc.RecordPayment(context.Background(), usecase.RecordPaymentInput{
		UserID: "user-1",
		DebtID: debt.ID,
		Amount: mustDecimal(t, "100.00"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payments, err := uc.ListPayments(context.Background(), "user-1", debt.ID, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("expected 1 payment, got %d", len(payments))
	}

	if _, err := uc.ListPayments(context.Background(), "intruder", debt.ID, 10, 0); !errors.Is(err, domain.ErrDebtNotFound) {
		t.Errorf("expected ErrDebtNotFound for foreign debt, got %v", err)
	}
}
