package domain

import "github.com/shopspring/decimal"

type CreditCard struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Name            string          `json:"name"`
	Limit           decimal.Decimal `json:"limit"`
	InvoiceStartDay int             `json:"invoice_start_day"`
}

// CreditCardPatch enumerates the updatable credit card fields. A nil field
// leaves the stored value untouched.
type CreditCardPatch struct {
	Name            *string          `json:"name,omitempty"`
	Limit           *decimal.Decimal `json:"limit,omitempty"`
	InvoiceStartDay *int             `json:"invoice_start_day,omitempty"`
}

// Apply copies the set fields onto the card.
func (p CreditCardPatch) Apply(card *CreditCard) {
	if p.Name != nil {
		card.Name = *p.Name
	}
	if p.Limit != nil {
		card.Limit = *p.Limit
	}
	if p.InvoiceStartDay != nil {
		card.InvoiceStartDay = *p.InvoiceStartDay
	}
}

type CreditCardRepository interface {
	FindAll(userID string) ([]CreditCard, error)
	FindByID(creditCardID, userID string) (*CreditCard, error)
	Create(card CreditCard) (*CreditCard, error)
	Update(card CreditCard) error
	Delete(creditCardID, userID string) error
}
