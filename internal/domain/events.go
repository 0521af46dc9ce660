package domain

import "time"

// Event types
const (
	EventTypePaymentRecorded = "payment.recorded"
	EventTypeDebtCreated     = "debt.created"
	EventTypeDebtPaidOff     = "debt.paid_off"
)

// Aggregate types
const (
	AggregateTypeDebt    = "debt"
	AggregateTypePayment = "payment"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PaymentRecordedEvent payload
type PaymentRecordedEvent struct {
	PaymentID        string `json:"payment_id"`
	DebtID           string `json:"debt_id"`
	Amount           string `json:"amount"`
	InterestPortion  string `json:"interest_portion"`
	PrincipalPortion string `json:"principal_portion"`
	BalanceAfter     string `json:"balance_after"`
}

// DebtCreatedEvent payload
type DebtCreatedEvent struct {
	DebtID  string `json:"debt_id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

// DebtPaidOffEvent payload
type DebtPaidOffEvent struct {
	DebtID    string `json:"debt_id"`
	PaymentID string `json:"payment_id"`
}
