package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidDebtName = errors.New("invalid debt name")
	ErrRateTooHigh     = errors.New("interest rate exceeds maximum allowed")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
	ErrTooManyDebts    = errors.New("too many debts in one simulation")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrPasswordTooWeak = errors.New("password does not meet requirements")
)

// Validation constants
const (
	MaxDebtNameLength = 255
	MinDebtNameLength = 1
	MaxDebtAmount     = "100000000" // 100 million per debt
	MaxAnnualRate     = "300"       // 300% APR covers payday-loan territory
	MaxDebtsPerRun    = 100
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateDebtName validates a debt's display name.
func ValidateDebtName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinDebtNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidDebtName)
	}

	if len(name) > MaxDebtNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidDebtName, MaxDebtNameLength)
	}

	return nil
}

// ValidateBalance validates a debt balance.
func ValidateBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrNegativeBalance
	}

	maxAmount, _ := decimal.NewFromString(MaxDebtAmount)
	if balance.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum balance is %s", ErrAmountTooLarge, MaxDebtAmount)
	}

	return nil
}

// ValidateRate validates an annual interest rate percentage.
func ValidateRate(annualRatePercent decimal.Decimal) error {
	if annualRatePercent.IsNegative() {
		return ErrNegativeRate
	}

	maxRate, _ := decimal.NewFromString(MaxAnnualRate)
	if annualRatePercent.GreaterThan(maxRate) {
		return fmt.Errorf("%w: maximum rate is %s%%", ErrRateTooHigh, MaxAnnualRate)
	}

	return nil
}

// ValidatePaymentAmount validates a payment or extra-payment amount.
// Zero is allowed; simulations accept an extra payment of nothing.
func ValidatePaymentAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativePayment
	}

	maxAmount, _ := decimal.NewFromString(MaxDebtAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum payment is %s", ErrAmountTooLarge, MaxDebtAmount)
	}

	return nil
}

// ValidateDebt validates every numeric field of a debt once, at the
// simulation or persistence boundary. The engine itself never validates.
func ValidateDebt(d *Debt) error {
	if err := ValidateDebtName(d.Name); err != nil {
		return err
	}
	if err := ValidateBalance(d.Balance); err != nil {
		return err
	}
	if err := ValidateRate(d.AnnualRatePercent); err != nil {
		return err
	}
	if err := ValidatePaymentAmount(d.MinimumPayment); err != nil {
		return err
	}

	return nil
}

// ValidateDebts validates a full simulation input set.
func ValidateDebts(debts []*Debt) error {
	if len(debts) == 0 {
		return ErrNoDebts
	}

	if len(debts) > MaxDebtsPerRun {
		return fmt.Errorf("%w: maximum is %d", ErrTooManyDebts, MaxDebtsPerRun)
	}

	for _, d := range debts {
		if err := ValidateDebt(d); err != nil {
			return err
		}
	}

	return nil
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must not exceed %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}

	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasUpper || !hasLower || !hasNumber {
		return fmt.Errorf("%w: must contain uppercase, lowercase, and numbers", ErrPasswordTooWeak)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
