package application

import (
	"github.com/solomon-finance/solomon/internal/finance/domain"
	financeErrors "github.com/solomon-finance/solomon/internal/finance/errors"
)

// TransformTransactions maps transactions into the flat export table.
// Recurring-day and card cells stay absent (nil) when the transaction has
// none; an empty input fails with a DataTransformationError.
func TransformTransactions(transactions []domain.Transaction) (*domain.ReportTable, error) {
	if len(transactions) == 0 {
		return nil, financeErrors.NewDataTransformationError("no data provided for transformation")
	}

	rows := make([]domain.ReportRow, 0, len(transactions))
	for _, transaction := range transactions {
		row := domain.ReportRow{
			Description:  transaction.Description,
			Date:         transaction.Date,
			RecurringDay: transaction.RecurringDay,
			Amount:       transaction.Amount,
		}
		if transaction.Category != nil {
			description := transaction.Category.Description
			row.Category = &description
		}
		if transaction.CreditCard != nil {
			name := transaction.CreditCard.Name
			row.CreditCard = &name
		}
		rows = append(rows, row)
	}

	return &domain.ReportTable{Columns: domain.ReportColumns, Rows: rows}, nil
}
