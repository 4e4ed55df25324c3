package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportColumns is the fixed column order of the export table.
var ReportColumns = []string{"Description", "Date", "Recurring Day", "Category", "Credit Card", "Amount"}

// ReportRow is one flattened transaction. Nil pointers mark absent cells;
// the exporter decides how absence is rendered.
type ReportRow struct {
	Description  string
	Date         *time.Time
	RecurringDay *int
	Category     *string
	CreditCard   *string
	Amount       decimal.Decimal
}

// ReportTable is the tabular artifact handed to a file exporter. It carries
// no bytes of its own; serialization is the exporter's concern.
type ReportTable struct {
	Columns []string
	Rows    []ReportRow
}
