package domain

import (
	"time"

	"github.com/shopspring/decimal"

	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

// Tx is the unit-of-work handle returned by TransactionRepository.BeginTx.
// The SQL implementation wraps *sql.Tx; mocks record commits and rollbacks.
type Tx interface {
	Commit() error
	Rollback() error
}

type TransactionRepository interface {
	BeginTx() (Tx, error)
	Create(transaction Transaction) (*Transaction, error)
	CreateWithInstallments(tx Tx, transaction Transaction, installments []Installment) (*Transaction, error)
	FindByID(transactionID, userID string) (*Transaction, error)
	Query(userID string, filters []Filter, params PaginationParams) (*PagedResult, error)
	FindAll(userID string, filters []Filter) ([]Transaction, error)
}

// Transaction is a persisted financial movement. It exclusively owns its
// Installments; Category and CreditCard are weak lookup references.
type Transaction struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	IsFixed      bool            `json:"is_fixed"`
	IsRevenue    bool            `json:"is_revenue"`
	Date         *time.Time      `json:"date,omitempty"`
	RecurringDay *int            `json:"recurring_day,omitempty"`
	Kind         Kind            `json:"kind"`
	CategoryID   string          `json:"category_id"`
	UserID       string          `json:"user_id"`
	CreditCardID *string         `json:"credit_card_id,omitempty"`
	Installments []Installment   `json:"installments,omitempty"`
	Category     *Category       `json:"category,omitempty"`
	CreditCard   *CreditCard     `json:"credit_card,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Installment is one dated slice of a variable credit transaction's total.
// Created only together with its parent transaction, never standalone.
type Installment struct {
	ID                string          `json:"id"`
	TransactionID     string          `json:"transaction_id"`
	InstallmentNumber int             `json:"installment_number"`
	Date              time.Time       `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
}

// TransactionRequest is an inbound, not yet persisted transaction.
// InstallmentsNumber is request-only and never stored.
type TransactionRequest struct {
	Description        string
	Amount             decimal.Decimal
	IsFixed            bool
	IsRevenue          bool
	Date               *time.Time
	RecurringDay       *int
	Kind               Kind
	CategoryID         string
	UserID             string
	CreditCardID       *string
	InstallmentsNumber *int
}

// Validate enforces the cross-field rules and normalizes the request in
// place: non-credit kinds drop any supplied credit card reference, and fixed
// requests drop any supplied date (fixed transactions recur by day-of-month,
// not by a concrete date). The first violated rule is reported.
func (r *TransactionRequest) Validate() error {
	if r.IsFixed && r.RecurringDay == nil {
		return financeErrors.NewValidationError("recurring_day", "recurring day is required when transaction is fixed")
	}
	if !r.IsFixed && r.Date == nil {
		return financeErrors.NewValidationError("date", "date is required when transaction is not fixed")
	}
	if r.Kind == KindCredit && r.CreditCardID == nil {
		return financeErrors.NewValidationError("credit_card_id", "credit card is required when transaction is credit")
	}
	if !r.Kind.IsValid() {
		return financeErrors.NewValidationError("kind", "kind must be one of credit, debit, transfer, pix, cash")
	}
	if !r.Amount.IsPositive() {
		return financeErrors.NewValidationError("amount", "amount must be greater than zero")
	}
	if r.RecurringDay != nil && (*r.RecurringDay < 1 || *r.RecurringDay > 31) {
		return financeErrors.NewValidationError("recurring_day", "recurring day must be between 1 and 31")
	}
	if r.InstallmentsNumber != nil && *r.InstallmentsNumber < 1 {
		return financeErrors.NewValidationError("installments_number", "installments number must be greater than zero")
	}

	if r.Kind != KindCredit {
		r.CreditCardID = nil
	}
	if r.IsFixed {
		r.Date = nil
	}
	return nil
}
