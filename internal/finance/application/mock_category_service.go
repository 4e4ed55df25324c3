package application

import (
	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

// MockCategoryService resolves every category unless KnownIDs is set.
type MockCategoryService struct {
	KnownIDs map[string]bool
	Err      error
}

func (m *MockCategoryService) GetCategory(categoryID string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.KnownIDs != nil && !m.KnownIDs[categoryID] {
		return nil, financeErrors.ErrCategoryNotFound
	}
	return &domain.Category{ID: categoryID, Description: "Groceries"}, nil
}
