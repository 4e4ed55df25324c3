package application

import (
	"log"

	"github.com/google/uuid"

	"github.com/solomon-finance/solomon/internal/finance/domain"
)

// CreditCardTransactionHandler persists an installment-eligible transaction
// together with its generated installments as a single atomic write.
type CreditCardTransactionHandler struct {
	repo domain.TransactionRepository
}

func NewCreditCardTransactionHandler(repo domain.TransactionRepository) *CreditCardTransactionHandler {
	return &CreditCardTransactionHandler{repo: repo}
}

// Process generates the installment plan for the request and stores the
// transaction and all installments in one store transaction. On any failure
// the store transaction is rolled back and the error is returned unchanged;
// retrying is the caller's decision.
func (h *CreditCardTransactionHandler) Process(request domain.TransactionRequest) (*domain.Transaction, error) {
	plans := GenerateInstallments(request)

	transaction := mapRequestToTransaction(request)
	transaction.ID = uuid.NewString()

	installments := make([]domain.Installment, len(plans))
	for i, plan := range plans {
		installments[i] = domain.Installment{
			ID:                uuid.NewString(),
			TransactionID:     transaction.ID,
			InstallmentNumber: plan.Number,
			Date:              plan.Date,
			Amount:            plan.Amount,
		}
	}

	tx, err := h.repo.BeginTx()
	if err != nil {
		return nil, err
	}

	created, err := h.repo.CreateWithInstallments(tx, transaction, installments)
	if err != nil {
		safeRollback(tx)
		log.Printf("Error creating credit card transaction: %v", err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		safeRollback(tx)
		log.Printf("Error committing credit card transaction: %v", err)
		return nil, err
	}
	return created, nil
}

func safeRollback(tx domain.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}

// mapRequestToTransaction copies the persistable request fields;
// InstallmentsNumber is request-only and intentionally left behind.
func mapRequestToTransaction(request domain.TransactionRequest) domain.Transaction {
	return domain.Transaction{
		Description:  request.Description,
		Amount:       request.Amount,
		IsFixed:      request.IsFixed,
		IsRevenue:    request.IsRevenue,
		Date:         request.Date,
		RecurringDay: request.RecurringDay,
		Kind:         request.Kind,
		CategoryID:   request.CategoryID,
		UserID:       request.UserID,
		CreditCardID: request.CreditCardID,
	}
}
