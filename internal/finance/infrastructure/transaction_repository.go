package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/solomon-finance/solomon/internal/finance/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `t.id, t.description, t.amount, t.is_fixed, t.is_revenue, t.date, t.recurring_day,
		t.kind, t.category_id, t.user_id, t.credit_card_id, t.created_at, t.updated_at, c.description, cc.name`

const transactionJoins = `FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		LEFT JOIN credit_cards cc ON cc.id = t.credit_card_id`

// filterColumns maps wire filter fields onto columns, with the cast needed
// so text query parameters compare against typed columns. ParseFilters has
// already rejected anything not listed here.
var filterColumns = map[string]struct {
	column string
	cast   string
}{
	"description":    {column: "t.description"},
	"amount":         {column: "t.amount", cast: "::numeric"},
	"date":           {column: "t.date", cast: "::date"},
	"recurring_day":  {column: "t.recurring_day", cast: "::int"},
	"is_fixed":       {column: "t.is_fixed", cast: "::boolean"},
	"is_revenue":     {column: "t.is_revenue", cast: "::boolean"},
	"kind":           {column: "t.kind"},
	"category_id":    {column: "t.category_id", cast: "::uuid"},
	"credit_card_id": {column: "t.credit_card_id", cast: "::uuid"},
}

// buildWhere renders the mandatory user scope plus every parsed filter as an
// AND-ed WHERE clause with positional arguments.
func buildWhere(userID string, filters []domain.Filter) (string, []interface{}) {
	clauses := []string{"t.user_id = $1"}
	args := []interface{}{userID}

	for _, filter := range filters {
		mapping := filterColumns[filter.Field]
		switch filter.Op {
		case domain.FilterIn:
			values := strings.Split(filter.Value, ",")
			placeholders := make([]string, len(values))
			for i, value := range values {
				args = append(args, strings.TrimSpace(value))
				placeholders[i] = fmt.Sprintf("$%d%s", len(args), mapping.cast)
			}
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", mapping.column, strings.Join(placeholders, ", ")))
		case domain.FilterLike:
			args = append(args, filter.Value)
			clauses = append(clauses, fmt.Sprintf("%s::text LIKE $%d", mapping.column, len(args)))
		case domain.FilterILike:
			args = append(args, filter.Value)
			clauses = append(clauses, fmt.Sprintf("%s::text ILIKE $%d", mapping.column, len(args)))
		default:
			operators := map[domain.FilterOp]string{
				domain.FilterEq:  "=",
				domain.FilterGt:  ">",
				domain.FilterLt:  "<",
				domain.FilterGte: ">=",
				domain.FilterLte: "<=",
			}
			args = append(args, filter.Value)
			clauses = append(clauses, fmt.Sprintf("%s %s $%d%s", mapping.column, operators[filter.Op], len(args), mapping.cast))
		}
	}
	return strings.Join(clauses, " AND "), args
}

func (r *TransactionRepository) BeginTx() (domain.Tx, error) {
	return r.db.Begin()
}

func (r *TransactionRepository) Create(transaction domain.Transaction) (*domain.Transaction, error) {
	err := r.db.QueryRow(
		`INSERT INTO transactions (id, description, amount, is_fixed, is_revenue, date, recurring_day, kind, category_id, user_id, credit_card_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		transaction.ID, transaction.Description, transaction.Amount, transaction.IsFixed, transaction.IsRevenue,
		transaction.Date, transaction.RecurringDay, transaction.Kind, transaction.CategoryID, transaction.UserID,
		transaction.CreditCardID,
	).Scan(&transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// CreateWithInstallments inserts the transaction and all installments inside
// the supplied store transaction. Commit stays with the caller so a failure
// anywhere leaves zero durable writes.
func (r *TransactionRepository) CreateWithInstallments(tx domain.Tx, transaction domain.Transaction, installments []domain.Installment) (*domain.Transaction, error) {
	sqlTx, ok := tx.(*sql.Tx)
	if !ok {
		return nil, errors.New("transaction repository requires a *sql.Tx")
	}

	err := sqlTx.QueryRow(
		`INSERT INTO transactions (id, description, amount, is_fixed, is_revenue, date, recurring_day, kind, category_id, user_id, credit_card_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		transaction.ID, transaction.Description, transaction.Amount, transaction.IsFixed, transaction.IsRevenue,
		transaction.Date, transaction.RecurringDay, transaction.Kind, transaction.CategoryID, transaction.UserID,
		transaction.CreditCardID,
	).Scan(&transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, installment := range installments {
		_, err := sqlTx.Exec(
			`INSERT INTO installments (id, transaction_id, installment_number, date, amount)
			VALUES ($1, $2, $3, $4, $5)`,
			installment.ID, installment.TransactionID, installment.InstallmentNumber, installment.Date, installment.Amount,
		)
		if err != nil {
			return nil, err
		}
	}

	transaction.Installments = installments
	return &transaction, nil
}

func (r *TransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	row := r.db.QueryRow(
		`SELECT `+transactionColumns+` `+transactionJoins+` WHERE t.id = $1 AND t.user_id = $2`,
		transactionID, userID,
	)

	transaction, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	transactions := []domain.Transaction{*transaction}
	if err := r.loadInstallments(transactions); err != nil {
		return nil, err
	}
	return &transactions[0], nil
}

// Query returns one page of the filtered set, ordered by date descending
// with the id as a stable tie-break, installments eagerly attached.
func (r *TransactionRepository) Query(userID string, filters []domain.Filter, params domain.PaginationParams) (*domain.PagedResult, error) {
	where, args := buildWhere(userID, filters)

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM transactions t WHERE `+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT %s %s WHERE %s ORDER BY t.date DESC NULLS LAST, t.id LIMIT $%d OFFSET $%d`,
		transactionColumns, transactionJoins, where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Size, (params.Page-1)*params.Size)

	transactions, err := r.queryTransactions(query, args...)
	if err != nil {
		return nil, err
	}
	if err := r.loadInstallments(transactions); err != nil {
		return nil, err
	}

	return &domain.PagedResult{
		Items: transactions,
		Page:  params.Page,
		Pages: domain.TotalPages(total, params.Size),
		Size:  params.Size,
		Total: total,
	}, nil
}

// FindAll returns the whole filtered set in listing order, for export.
func (r *TransactionRepository) FindAll(userID string, filters []domain.Filter) ([]domain.Transaction, error) {
	where, args := buildWhere(userID, filters)
	query := fmt.Sprintf(
		`SELECT %s %s WHERE %s ORDER BY t.date DESC NULLS LAST, t.id`,
		transactionColumns, transactionJoins, where,
	)

	transactions, err := r.queryTransactions(query, args...)
	if err != nil {
		return nil, err
	}
	if err := r.loadInstallments(transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var categoryDescription, creditCardName sql.NullString

	err := row.Scan(
		&transaction.ID, &transaction.Description, &transaction.Amount, &transaction.IsFixed, &transaction.IsRevenue,
		&transaction.Date, &transaction.RecurringDay, &transaction.Kind, &transaction.CategoryID, &transaction.UserID,
		&transaction.CreditCardID, &transaction.CreatedAt, &transaction.UpdatedAt, &categoryDescription, &creditCardName,
	)
	if err != nil {
		return nil, err
	}

	if categoryDescription.Valid {
		transaction.Category = &domain.Category{ID: transaction.CategoryID, Description: categoryDescription.String}
	}
	if creditCardName.Valid && transaction.CreditCardID != nil {
		transaction.CreditCard = &domain.CreditCard{ID: *transaction.CreditCardID, Name: creditCardName.String}
	}
	return &transaction, nil
}

// loadInstallments attaches the installments of every listed transaction in
// a single round trip.
func (r *TransactionRepository) loadInstallments(transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	index := make(map[string]int, len(transactions))
	placeholders := make([]string, len(transactions))
	args := make([]interface{}, len(transactions))
	for i := range transactions {
		index[transactions[i].ID] = i
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = transactions[i].ID
	}

	rows, err := r.db.Query(
		`SELECT id, transaction_id, installment_number, date, amount FROM installments
		WHERE transaction_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY transaction_id, installment_number`,
		args...,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var installment domain.Installment
		if err := rows.Scan(&installment.ID, &installment.TransactionID, &installment.InstallmentNumber,
			&installment.Date, &installment.Amount); err != nil {
			return err
		}
		i := index[installment.TransactionID]
		transactions[i].Installments = append(transactions[i].Installments, installment)
	}
	return rows.Err()
}
