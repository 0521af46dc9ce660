package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/usecase"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

const paymentSelectCols = `id, debt_id, user_id, amount, interest_portion, principal_portion, balance_before, balance_after, created_at`

func scanPayment(scan func(...any) error) (*domain.Payment, error) {
	var (
		payment       domain.Payment
		amount        pgtype.Numeric
		interest      pgtype.Numeric
		principal     pgtype.Numeric
		balanceBefore pgtype.Numeric
		balanceAfter  pgtype.Numeric
	)

	err := scan(
		&payment.ID,
		&payment.DebtID,
		&payment.UserID,
		&amount,
		&interest,
		&principal,
		&balanceBefore,
		&balanceAfter,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.Amount = numericToDecimal(amount)
	payment.InterestPortion = numericToDecimal(interest)
	payment.PrincipalPortion = numericToDecimal(principal)
	payment.BalanceBefore = numericToDecimal(balanceBefore)
	payment.BalanceAfter = numericToDecimal(balanceAfter)

	return &payment, nil
}

// Create inserts a payment within a transaction. Payments only ever land
// in the same transaction that moves the debt balance.
func (r *PaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO payments (id, debt_id, user_id, amount, interest_portion, principal_portion, balance_before, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := pgxTx.Exec(ctx, query,
		payment.ID,
		payment.DebtID,
		payment.UserID,
		decimalToNumeric(payment.Amount),
		decimalToNumeric(payment.InterestPortion),
		decimalToNumeric(payment.PrincipalPortion),
		decimalToNumeric(payment.BalanceBefore),
		decimalToNumeric(payment.BalanceAfter),
		timeToPgTimestamptz(payment.CreatedAt),
	)

	return err
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentSelectCols + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.pool.QueryRow(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	return payment, nil
}

// ListByDebt lists payments against a debt, newest first.
func (r *PaymentRepository) ListByDebt(ctx context.Context, debtID string, limit, offset int) ([]*domain.Payment, error) {
	query := `
		SELECT ` + paymentSelectCols + `
		FROM payments
		WHERE debt_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, debtID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
