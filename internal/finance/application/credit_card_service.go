package application

import (
	"github.com/google/uuid"

	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

type CreditCardService struct {
	repo domain.CreditCardRepository
}

func NewCreditCardService(repo domain.CreditCardRepository) *CreditCardService {
	return &CreditCardService{repo: repo}
}

func (s *CreditCardService) GetCreditCards(userID string) ([]domain.CreditCard, error) {
	cards, err := s.repo.FindAll(userID)
	if err != nil {
		return nil, err
	}
	if cards == nil {
		return []domain.CreditCard{}, nil
	}
	return cards, nil
}

func (s *CreditCardService) GetCreditCard(creditCardID, userID string) (*domain.CreditCard, error) {
	card, err := s.repo.FindByID(creditCardID, userID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, financeErrors.ErrCreditCardNotFound
	}
	return card, nil
}

func (s *CreditCardService) CreateCreditCard(card domain.CreditCard) (*domain.CreditCard, error) {
	card.ID = uuid.NewString()
	return s.repo.Create(card)
}

// UpdateCreditCard applies the patch field-by-field onto the stored card.
func (s *CreditCardService) UpdateCreditCard(creditCardID, userID string, patch domain.CreditCardPatch) (*domain.CreditCard, error) {
	card, err := s.GetCreditCard(creditCardID, userID)
	if err != nil {
		return nil, err
	}
	patch.Apply(card)
	if err := s.repo.Update(*card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CreditCardService) DeleteCreditCard(creditCardID, userID string) (*domain.CreditCard, error) {
	card, err := s.GetCreditCard(creditCardID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(creditCardID, userID); err != nil {
		return nil, err
	}
	return card, nil
}
