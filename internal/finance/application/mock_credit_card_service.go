package application

import (
	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

// MockCreditCardService resolves every card unless KnownIDs is set.
type MockCreditCardService struct {
	KnownIDs map[string]bool
	Err      error
}

func (m *MockCreditCardService) GetCreditCard(creditCardID, userID string) (*domain.CreditCard, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.KnownIDs != nil && !m.KnownIDs[creditCardID] {
		return nil, financeErrors.ErrCreditCardNotFound
	}
	return &domain.CreditCard{ID: creditCardID, UserID: userID, Name: "Card A"}, nil
}
