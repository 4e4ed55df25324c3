package application

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solomon-finance/solomon/internal/finance/domain"
)

// InstallmentPlan is one computed slice of a credit purchase, not yet
// persisted.
type InstallmentPlan struct {
	Number int
	Date   time.Time
	Amount decimal.Decimal
}

// RequiresInstallmentHandling reports whether a request must be split into
// installments: only variable credit transactions are. Fixed credit
// transactions model open-ended recurring charges and are recorded
// atomically like any other fixed transaction.
func RequiresInstallmentHandling(request domain.TransactionRequest) bool {
	return request.Kind == domain.KindCredit && !request.IsFixed
}

// GenerateInstallments computes the installment schedule for a request.
// A missing installments number counts as 1. Every installment gets
// amount/count rounded half-up to 2 decimal places; the last installment is
// deliberately not adjusted, so the schedule may drift from the original
// total by up to a cent per extra installment (300.00/3 is exact, 100.00/3
// yields 3x33.33 = 99.99). Dates start at the request date and advance one
// calendar month at a time, clamping to the last day of shorter months.
// Pure: no I/O, input is not mutated.
func GenerateInstallments(request domain.TransactionRequest) []InstallmentPlan {
	if request.Date == nil {
		return nil
	}

	count := 1
	if request.InstallmentsNumber != nil {
		count = *request.InstallmentsNumber
	}

	amount := request.Amount.Div(decimal.NewFromInt(int64(count))).Round(2)

	plans := make([]InstallmentPlan, count)
	date := *request.Date
	for i := 0; i < count; i++ {
		plans[i] = InstallmentPlan{
			Number: i + 1,
			Date:   date,
			Amount: amount,
		}
		date = addOneMonth(date)
	}
	return plans
}

// addOneMonth advances by one calendar month, keeping the day-of-month when
// it exists and clamping to the month's last day otherwise (Jan 31 -> Feb 28).
// time.AddDate would normalize Jan 31 into early March instead.
func addOneMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month+1, day, 0, 0, 0, 0, t.Location())
}
