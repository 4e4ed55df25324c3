package database

import "log"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		hash_password VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		description VARCHAR(30) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS credit_cards (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		name VARCHAR(50) NOT NULL,
		credit_limit NUMERIC(12,2) NOT NULL,
		invoice_start_day INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		description VARCHAR(50) NOT NULL,
		amount NUMERIC(12,2) NOT NULL,
		is_fixed BOOLEAN NOT NULL DEFAULT FALSE,
		is_revenue BOOLEAN NOT NULL DEFAULT FALSE,
		date DATE,
		recurring_day INT,
		kind VARCHAR(20) NOT NULL,
		category_id UUID NOT NULL REFERENCES categories(id),
		user_id UUID NOT NULL REFERENCES users(id),
		credit_card_id UUID REFERENCES credit_cards(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS installments (
		id UUID PRIMARY KEY,
		transaction_id UUID NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
		installment_number INT NOT NULL,
		date DATE NOT NULL,
		amount NUMERIC(12,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions (user_id, date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_installments_transaction ON installments (transaction_id)`,
	`INSERT INTO categories (description) VALUES
		('Groceries'), ('Housing'), ('Transport'), ('Health'), ('Leisure'),
		('Education'), ('Subscriptions'), ('Salary'), ('Other')
	ON CONFLICT (description) DO NOTHING`,
}

// Migrate creates the schema and seeds the default categories. Every
// statement is idempotent.
func (s *DBService) Migrate() error {
	for _, statement := range schema {
		if _, err := s.DB.Exec(statement); err != nil {
			return err
		}
	}
	log.Println("Database schema is up to date")
	return nil
}
