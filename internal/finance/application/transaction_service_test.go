package application

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/solomon-finance/solomon/internal/export"
	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
	"github.com/solomon-finance/solomon/internal/finance/infrastructure"
)

func newService(repo *infrastructure.MockTransactionRepository) *TransactionService {
	return NewTransactionService(repo, &MockCategoryService{}, &MockCreditCardService{}, export.NewCSVExporter())
}

func TestCreateTransaction_RejectsInvalidRequest(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newService(repo)

	request := domain.TransactionRequest{
		Description: "Streaming",
		Amount:      decimal.NewFromFloat(29.90),
		IsFixed:     true,
		Kind:        domain.KindPix,
		CategoryID:  "category-1",
		UserID:      "user-1",
	}

	created, err := service.CreateTransaction(&request)
	assert.Nil(t, created)
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Created)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo,
		&MockCategoryService{KnownIDs: map[string]bool{}},
		&MockCreditCardService{},
		export.NewCSVExporter(),
	)

	date := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	request := domain.TransactionRequest{
		Description: "Lunch",
		Amount:      decimal.NewFromFloat(42.00),
		Date:        &date,
		Kind:        domain.KindCash,
		CategoryID:  "missing",
		UserID:      "user-1",
	}

	created, err := service.CreateTransaction(&request)
	assert.Nil(t, created)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestCreateTransaction_VariableCreditGetsInstallments(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newService(repo)

	three := 3
	request := creditRequest("300.00", &three, time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC))

	created, err := service.CreateTransaction(&request)
	assert.NoError(t, err)
	assert.Len(t, created.Installments, 3)
	assert.Len(t, repo.CreatedInstallments, 1)
}

func TestCreateTransaction_FixedCreditIsAtomic(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newService(repo)

	day := 10
	cardID := "card-1"
	request := domain.TransactionRequest{
		Description:  "Streaming subscription",
		Amount:       decimal.NewFromFloat(29.90),
		IsFixed:      true,
		RecurringDay: &day,
		Kind:         domain.KindCredit,
		CategoryID:   "category-1",
		UserID:       "user-1",
		CreditCardID: &cardID,
	}

	created, err := service.CreateTransaction(&request)
	assert.NoError(t, err)
	assert.Empty(t, created.Installments)
	assert.Empty(t, repo.CreatedInstallments)
	assert.Len(t, repo.Created, 1)
}

func TestCreateTransaction_NonCreditLosesCardReference(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newService(repo)

	cardID := "card-1"
	date := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	request := domain.TransactionRequest{
		Description:  "Rent",
		Amount:       decimal.NewFromFloat(1200.00),
		Date:         &date,
		Kind:         domain.KindTransfer,
		CategoryID:   "category-1",
		UserID:       "user-1",
		CreditCardID: &cardID,
	}

	created, err := service.CreateTransaction(&request)
	assert.NoError(t, err)
	assert.Nil(t, created.CreditCardID)
}

func TestGetTransaction_NotFound(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newService(repo)

	transaction, err := service.GetTransaction("missing", "user-1")
	assert.Nil(t, transaction)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestGetTransaction_ScopedToOwner(t *testing.T) {
	date := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{Transactions: []domain.Transaction{
		{ID: "tx-1", UserID: "user-1", Date: &date},
	}}
	service := newService(repo)

	transaction, err := service.GetTransaction("tx-1", "someone-else")
	assert.Nil(t, transaction)
	assert.True(t, financeErrors.IsNotFoundError(err))

	transaction, err = service.GetTransaction("tx-1", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "tx-1", transaction.ID)
}

func TestGetTransactions_InvalidFilter(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newService(repo)

	result, err := service.GetTransactions("user-1", map[string]string{"date__bogus": "x"}, domain.PaginationParams{Page: 1, Size: 20})
	assert.Nil(t, result)
	assert.True(t, financeErrors.IsFilterError(err))
}

func TestGetTransactions_Paginates(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	for i := 0; i < 5; i++ {
		date := time.Date(2024, time.January, i+1, 0, 0, 0, 0, time.UTC)
		repo.Transactions = append(repo.Transactions, domain.Transaction{ID: string(rune('a' + i)), UserID: "user-1", Date: &date})
	}
	service := newService(repo)

	result, err := service.GetTransactions("user-1", nil, domain.PaginationParams{Page: 2, Size: 2})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.Pages)
	assert.Equal(t, 5, result.Total)
	assert.Len(t, result.Items, 2)
}

func TestExportTransactions_NoData(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newService(repo)

	data, err := service.ExportTransactions("user-1", nil)
	assert.Nil(t, data)
	assert.True(t, financeErrors.IsNoDataError(err))
}

func TestExportTransactions_InvalidFilterBeforeQuery(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := newService(repo)

	data, err := service.ExportTransactions("user-1", map[string]string{"nooperator": "x"})
	assert.Nil(t, data)
	assert.True(t, financeErrors.IsFilterError(err))
}

func TestExportTransactions_WritesCSV(t *testing.T) {
	date := time.Date(2024, time.February, 11, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{Transactions: []domain.Transaction{
		{
			ID:          "tx-1",
			UserID:      "user-1",
			Description: "Supermarket",
			Amount:      decimal.RequireFromString("200.00"),
			Date:        &date,
			Kind:        domain.KindDebit,
			Category:    &domain.Category{ID: "category-1", Description: "Groceries"},
		},
	}}
	service := newService(repo)

	data, err := service.ExportTransactions("user-1", nil)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Description,Date,Recurring Day,Category,Credit Card,Amount", lines[0])
	assert.Equal(t, "Supermarket,2024-02-11,,Groceries,,200.00", lines[1])
}
