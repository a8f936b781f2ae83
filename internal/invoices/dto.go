package invoices

import "github.com/itplanet/retail-backend/internal/ledger"

// SaveInvoiceRequest carries the save-invoice payload. An empty invoice
// number means a new invoice; a known number updates the existing one.
type SaveInvoiceRequest struct {
	InvoiceNumber string        `json:"invoice_number"`
	ClientName    string        `json:"client_name" validate:"required"`
	MobileNumber  string        `json:"mobile_number" validate:"required"`
	InvoiceDate   string        `json:"invoice_date" validate:"required"`
	DueDate       string        `json:"due_date" validate:"required"`
	Categories    string        `json:"categories" validate:"required"`
	Products      []ledger.Item `json:"products"`
	Paid          float64       `json:"paid" validate:"gte=0"`
	Location      string        `json:"location" validate:"required"`
}

// SettleRequest records a further payment against the remaining due.
type SettleRequest struct {
	Paid float64 `json:"paid"`
}

// ListFilter scopes invoice queries.
type ListFilter struct {
	Location string
}
