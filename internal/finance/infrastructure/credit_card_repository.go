package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/solomon-finance/solomon/internal/finance/domain"
)

type CreditCardRepository struct {
	db *sql.DB
}

func NewCreditCardRepository(db *sql.DB) *CreditCardRepository {
	return &CreditCardRepository{db: db}
}

func (r *CreditCardRepository) FindAll(userID string) ([]domain.CreditCard, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, credit_limit, invoice_start_day FROM credit_cards WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.CreditCard
	for rows.Next() {
		var card domain.CreditCard
		if err := rows.Scan(&card.ID, &card.UserID, &card.Name, &card.Limit, &card.InvoiceStartDay); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (r *CreditCardRepository) FindByID(creditCardID, userID string) (*domain.CreditCard, error) {
	var card domain.CreditCard
	err := r.db.QueryRow(
		`SELECT id, user_id, name, credit_limit, invoice_start_day FROM credit_cards WHERE id = $1 AND user_id = $2`,
		creditCardID, userID,
	).Scan(&card.ID, &card.UserID, &card.Name, &card.Limit, &card.InvoiceStartDay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CreditCardRepository) Create(card domain.CreditCard) (*domain.CreditCard, error) {
	_, err := r.db.Exec(
		`INSERT INTO credit_cards (id, user_id, name, credit_limit, invoice_start_day) VALUES ($1, $2, $3, $4, $5)`,
		card.ID, card.UserID, card.Name, card.Limit, card.InvoiceStartDay,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CreditCardRepository) Update(card domain.CreditCard) error {
	_, err := r.db.Exec(
		`UPDATE credit_cards SET name = $1, credit_limit = $2, invoice_start_day = $3 WHERE id = $4 AND user_id = $5`,
		card.Name, card.Limit, card.InvoiceStartDay, card.ID, card.UserID,
	)
	return err
}

func (r *CreditCardRepository) Delete(creditCardID, userID string) error {
	_, err := r.db.Exec(`DELETE FROM credit_cards WHERE id = $1 AND user_id = $2`, creditCardID, userID)
	return err
}
