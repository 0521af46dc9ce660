package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff/internal/domain"
	"github.com/debtwise/payoff/internal/usecase"
)

// DebtRepository implements usecase.DebtRepository.
type DebtRepository struct {
	pool *pgxpool.Pool
}

// NewDebtRepository creates a new DebtRepository.
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{pool: pool}
}

const debtSelectCols = `id, user_id, name, balance, annual_rate_percent, minimum_payment, active, created_at, updated_at`

func scanDebt(scan func(...any) error) (*domain.Debt, error) {
	var (
		debt    domain.Debt
		balance pgtype.Numeric
		rate    pgtype.Numeric
		minimum pgtype.Numeric
	)

	err := scan(
		&debt.ID,
		&debt.UserID,
		&debt.Name,
		&balance,
		&rate,
		&minimum,
		&debt.Active,
		&debt.CreatedAt,
		&debt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	debt.Balance = numericToDecimal(balance)
	debt.AnnualRatePercent = numericToDecimal(rate)
	debt.MinimumPayment = numericToDecimal(minimum)

	return &debt, nil
}

// Create inserts a new debt.
func (r *DebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	query := `
		INSERT INTO debts (id, user_id, name, balance, annual_rate_percent, minimum_payment, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		debt.ID,
		debt.UserID,
		debt.Name,
		decimalToNumeric(debt.Balance),
		decimalToNumeric(debt.AnnualRatePercent),
		decimalToNumeric(debt.MinimumPayment),
		debt.Active,
		timeToPgTimestamptz(debt.CreatedAt),
		timeToPgTimestamptz(debt.UpdatedAt),
	)

	return err
}

// GetByID retrieves a debt by ID.
func (r *DebtRepository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	query := `SELECT ` + debtSelectCols + ` FROM debts WHERE id = $1`

	debt, err := scanDebt(r.pool.QueryRow(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDebtNotFound
		}

		return nil, err
	}

	return debt, nil
}

// GetByIDForUpdate retrieves a debt by ID with a FOR UPDATE lock.
func (r *DebtRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Debt, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + debtSelectCols + ` FROM debts WHERE id = $1 FOR UPDATE`

	debt, err := scanDebt(pgxTx.QueryRow(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDebtNotFound
		}

		return nil, err
	}

	return debt, nil
}

// Update updates a debt's terms.
func (r *DebtRepository) Update(ctx context.Context, debt *domain.Debt) error {
	query := `
		UPDATE debts
		SET name = $2, annual_rate_percent = $3, minimum_payment = $4, active = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		debt.ID,
		debt.Name,
		decimalToNumeric(debt.AnnualRatePercent),
		decimalToNumeric(debt.MinimumPayment),
		debt.Active,
		timeToPgTimestamptz(debt.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

// UpdateBalance updates the balance of a debt.
func (r *DebtRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE debts SET balance = $2, updated_at = $3 WHERE id = $1`

	tag, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(balance), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

// Delete deletes a debt.
func (r *DebtRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

// ListByUser lists a user's debts with pagination, oldest first so custom
// strategy order matches creation order.
func (r *DebtRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Debt, error) {
	query := `
		SELECT ` + debtSelectCols + `
		FROM debts
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []*domain.Debt
	for rows.Next() {
		debt, err := scanDebt(rows.Scan)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	return debts, rows.Err()
}
