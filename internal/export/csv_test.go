package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/solomon-finance/solomon/internal/finance/domain"
)

func TestExport(t *testing.T) {
	day := 5
	date := time.Date(2024, time.February, 11, 0, 0, 0, 0, time.UTC)
	groceries := "Groceries"
	card := "Card A"

	table := &domain.ReportTable{
		Columns: domain.ReportColumns,
		Rows: []domain.ReportRow{
			{Description: "Gym", RecurringDay: &day, Category: &groceries, CreditCard: &card, Amount: decimal.RequireFromString("100.00")},
			{Description: "Supermarket, downtown", Date: &date, Amount: decimal.RequireFromString("200.5")},
		},
	}

	data, err := NewCSVExporter().Export(table)
	assert.NoError(t, err)

	expected := "Description,Date,Recurring Day,Category,Credit Card,Amount\n" +
		"Gym,,5,Groceries,Card A,100.00\n" +
		"\"Supermarket, downtown\",2024-02-11,,,,200.50\n"
	assert.Equal(t, expected, string(data))
}

func TestExport_EmptyTable(t *testing.T) {
	data, err := NewCSVExporter().Export(&domain.ReportTable{Columns: domain.ReportColumns})
	assert.NoError(t, err)
	assert.Equal(t, "Description,Date,Recurring Day,Category,Credit Card,Amount\n", string(data))
}
