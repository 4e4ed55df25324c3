package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/solomon-finance/solomon/internal/finance/domain"
)

const dateFormat = "2006-01-02"

// CSVExporter serializes a report table to CSV bytes. Absent cells become
// empty fields; it performs no transformation of its own.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(table *domain.ReportTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("writing export header: %w", err)
	}
	for _, row := range table.Rows {
		record := []string{
			row.Description,
			formatDate(row.Date),
			formatDay(row.RecurringDay),
			orEmpty(row.Category),
			orEmpty(row.CreditCard),
			row.Amount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing export CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateFormat)
}

func formatDay(day *int) string {
	if day == nil {
		return ""
	}
	return strconv.Itoa(*day)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
