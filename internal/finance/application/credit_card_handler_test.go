package application

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solomon-finance/solomon/internal/finance/infrastructure"
)

func TestProcess_PersistsTransactionWithInstallments(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	handler := NewCreditCardTransactionHandler(repo)

	three := 3
	request := creditRequest("300.00", &three, time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC))

	created, err := handler.Process(request)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, created.Installments, 3)

	// One atomic write, committed exactly once.
	assert.Len(t, repo.Created, 1)
	assert.Equal(t, 1, repo.Tx.Commits)
	assert.Equal(t, 0, repo.Tx.Rollbacks)

	for i, installment := range created.Installments {
		assert.Equal(t, created.ID, installment.TransactionID)
		assert.Equal(t, i+1, installment.InstallmentNumber)
		assert.Equal(t, "100", installment.Amount.String())
		assert.NotEmpty(t, installment.ID)
	}

	// The request-only installments count is not part of the record.
	assert.Equal(t, request.Description, created.Description)
	assert.Equal(t, request.CategoryID, created.CategoryID)
	assert.Equal(t, request.CreditCardID, created.CreditCardID)
}

func TestProcess_RollsBackOnPersistenceFailure(t *testing.T) {
	storeErr := errors.New("database not available")
	repo := &infrastructure.MockTransactionRepository{CreateWithInstallmentsErr: storeErr}
	handler := NewCreditCardTransactionHandler(repo)

	three := 3
	request := creditRequest("300.00", &three, time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC))

	created, err := handler.Process(request)
	assert.Nil(t, created)
	// Propagated unchanged, not wrapped.
	assert.Equal(t, storeErr, err)
	assert.Equal(t, 1, repo.Tx.Rollbacks)
	assert.Equal(t, 0, repo.Tx.Commits)
	assert.Empty(t, repo.Created)
}

func TestProcess_RollsBackOnCommitFailure(t *testing.T) {
	commitErr := errors.New("commit failed")
	repo := &infrastructure.MockTransactionRepository{Tx: &infrastructure.MockTx{CommitErr: commitErr}}
	handler := NewCreditCardTransactionHandler(repo)

	request := creditRequest("50.00", nil, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	created, err := handler.Process(request)
	assert.Nil(t, created)
	assert.Equal(t, commitErr, err)
	assert.Equal(t, 1, repo.Tx.Rollbacks)
}

func TestProcess_FailsToBeginTransaction(t *testing.T) {
	beginErr := errors.New("no connection")
	repo := &infrastructure.MockTransactionRepository{BeginTxErr: beginErr}
	handler := NewCreditCardTransactionHandler(repo)

	request := creditRequest("50.00", nil, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	created, err := handler.Process(request)
	assert.Nil(t, created)
	assert.Equal(t, beginErr, err)
}
