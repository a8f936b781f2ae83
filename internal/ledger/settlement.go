package ledger

import "errors"

// Settlement errors surfaced to the client.
var (
	ErrNonPositivePayment = errors.New("Paid amount must be a positive number!")
	ErrOverpayment        = errors.New("Paid amount exceeds due amount!")
)

// Payment statuses stored on purchases and invoices.
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPartial = "Partial"
	PaymentStatusDue     = "Due"
)

// Remaining computes due minus tendered. Negative results are allowed
// here so an in-progress overpayment can be displayed; Settle decides
// what may be persisted.
func Remaining(due, tendered float64) float64 {
	return due - tendered
}

// Settle validates a partial payment against the authoritative due
// amount and returns the new due balance. Only non-negative balances
// are ever persisted.
func Settle(due, tendered float64) (float64, error) {
	if tendered <= 0 {
		return due, ErrNonPositivePayment
	}
	remaining := Remaining(due, tendered)
	if remaining < 0 {
		return due, ErrOverpayment
	}
	return remaining, nil
}

// PaymentStatus derives the stored status from total and paid amounts.
func PaymentStatus(total, paid float64) string {
	switch {
	case paid <= 0:
		return PaymentStatusDue
	case paid < total:
		return PaymentStatusPartial
	default:
		return PaymentStatusPaid
	}
}
