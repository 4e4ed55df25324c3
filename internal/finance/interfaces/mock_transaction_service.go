package interfaces

import (
	"github.com/solomon-finance/solomon/internal/finance/domain"
)

// MockTransactionService is a canned-response service for handler tests.
type MockTransactionService struct {
	Transaction *domain.Transaction
	Result      *domain.PagedResult
	ExportData  []byte
	Err         error

	CreatedRequests []domain.TransactionRequest
	LastFilters     map[string]string
	LastParams      domain.PaginationParams
}

func (m *MockTransactionService) CreateTransaction(request *domain.TransactionRequest) (*domain.Transaction, error) {
	m.CreatedRequests = append(m.CreatedRequests, *request)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transaction, nil
}

func (m *MockTransactionService) GetTransaction(transactionID, userID string) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transaction, nil
}

func (m *MockTransactionService) GetTransactions(userID string, rawFilters map[string]string, params domain.PaginationParams) (*domain.PagedResult, error) {
	m.LastFilters = rawFilters
	m.LastParams = params
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

func (m *MockTransactionService) ExportTransactions(userID string, rawFilters map[string]string) ([]byte, error) {
	m.LastFilters = rawFilters
	if m.Err != nil {
		return nil, m.Err
	}
	return m.ExportData, nil
}
