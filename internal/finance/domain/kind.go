package domain

// Kind is the payment channel of a transaction.
type Kind string

const (
	KindCredit   Kind = "credit"
	KindDebit    Kind = "debit"
	KindTransfer Kind = "transfer"
	KindPix      Kind = "pix"
	KindCash     Kind = "cash"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindCredit, KindDebit, KindTransfer, KindPix, KindCash:
		return true
	}
	return false
}
