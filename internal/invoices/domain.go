// Package invoices handles sales invoices: ledger-validated billing,
// create-or-update keyed by invoice number, stock decrements on sale and
// due-payment settlement.
package invoices

import (
	"errors"
	"time"

	"github.com/itplanet/retail-backend/internal/ledger"
)

// Invoice is one sales invoice.
type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	ClientName    string        `json:"client_name"`
	MobileNumber  string        `json:"mobile_number"`
	InvoiceDate   time.Time     `json:"invoice_date"`
	DueDate       time.Time     `json:"due_date"`
	Categories    string        `json:"categories"`
	Products      []ledger.Item `json:"products"`
	Total         float64       `json:"total"`
	Paid          float64       `json:"paid"`
	Due           float64       `json:"due"`
	PaymentStatus string        `json:"payment_status"`
	Location      string        `json:"location"`
	CreatedBy     string        `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ErrNotFound indicates the invoice does not exist.
var ErrNotFound = errors.New("Invoice not found")
