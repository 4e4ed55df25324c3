package infrastructure

import (
	"sort"

	"github.com/solomon-finance/solomon/internal/finance/domain"
)

// MockTx records commits and rollbacks for handler tests.
type MockTx struct {
	Commits   int
	Rollbacks int
	CommitErr error
}

func (t *MockTx) Commit() error {
	t.Commits++
	return t.CommitErr
}

func (t *MockTx) Rollback() error {
	t.Rollbacks++
	return nil
}

// MockTransactionRepository is an in-memory stand-in for the SQL repository.
type MockTransactionRepository struct {
	Transactions []domain.Transaction

	Created             []domain.Transaction
	CreatedInstallments [][]domain.Installment

	Tx *MockTx

	BeginTxErr                error
	CreateErr                 error
	CreateWithInstallmentsErr error
	QueryErr                  error
}

func (m *MockTransactionRepository) BeginTx() (domain.Tx, error) {
	if m.BeginTxErr != nil {
		return nil, m.BeginTxErr
	}
	if m.Tx == nil {
		m.Tx = &MockTx{}
	}
	return m.Tx, nil
}

func (m *MockTransactionRepository) Create(transaction domain.Transaction) (*domain.Transaction, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Created = append(m.Created, transaction)
	m.Transactions = append(m.Transactions, transaction)
	return &transaction, nil
}

func (m *MockTransactionRepository) CreateWithInstallments(tx domain.Tx, transaction domain.Transaction, installments []domain.Installment) (*domain.Transaction, error) {
	if m.CreateWithInstallmentsErr != nil {
		return nil, m.CreateWithInstallmentsErr
	}
	transaction.Installments = installments
	m.Created = append(m.Created, transaction)
	m.CreatedInstallments = append(m.CreatedInstallments, installments)
	m.Transactions = append(m.Transactions, transaction)
	return &transaction, nil
}

func (m *MockTransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			return &m.Transactions[i], nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) Query(userID string, filters []domain.Filter, params domain.PaginationParams) (*domain.PagedResult, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	matches := m.forUser(userID)

	start := (params.Page - 1) * params.Size
	if start > len(matches) {
		start = len(matches)
	}
	end := start + params.Size
	if end > len(matches) {
		end = len(matches)
	}

	return &domain.PagedResult{
		Items: matches[start:end],
		Page:  params.Page,
		Pages: domain.TotalPages(len(matches), params.Size),
		Size:  params.Size,
		Total: len(matches),
	}, nil
}

func (m *MockTransactionRepository) FindAll(userID string, filters []domain.Filter) ([]domain.Transaction, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.forUser(userID), nil
}

func (m *MockTransactionRepository) forUser(userID string) []domain.Transaction {
	var matches []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			matches = append(matches, transaction)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Date == nil || matches[j].Date == nil {
			return matches[j].Date == nil && matches[i].Date != nil
		}
		return matches[i].Date.After(*matches[j].Date)
	})
	return matches
}
