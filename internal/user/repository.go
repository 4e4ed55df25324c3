package user

import (
	"database/sql"
	"errors"
)

type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(user User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (id, name, email, hash_password, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.HashPassword, user.CreatedAt,
	)
	return err
}

func (r *SQLRepository) FindByEmail(email string) (*User, error) {
	return r.findOne(`SELECT id, name, email, hash_password, created_at FROM users WHERE email = $1`, email)
}

func (r *SQLRepository) FindByID(userID string) (*User, error) {
	return r.findOne(`SELECT id, name, email, hash_password, created_at FROM users WHERE id = $1`, userID)
}

func (r *SQLRepository) findOne(query string, arg interface{}) (*User, error) {
	var user User
	err := r.db.QueryRow(query, arg).Scan(&user.ID, &user.Name, &user.Email, &user.HashPassword, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
