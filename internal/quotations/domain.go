// Package quotations manages price quotations: ledger-validated item
// lists without payment state, plus the printable PDF rendition.
package quotations

import (
	"errors"
	"time"

	"github.com/itplanet/retail-backend/internal/ledger"
)

// Quotation is one quoted offer for a customer.
type Quotation struct {
	ID              int64         `json:"id"`
	QuotationNumber string        `json:"quotation_number"`
	CustomerName    string        `json:"customer_name"`
	MobileNumber    string        `json:"mobile_number"`
	QuotationDate   time.Time     `json:"quotation_date"`
	Categories      string        `json:"categories"`
	Products        []ledger.Item `json:"products"`
	TotalPrice      float64       `json:"total_price"`
	Location        string        `json:"location"`
	CreatedBy       string        `json:"created_by"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ErrNotFound indicates the quotation does not exist.
var ErrNotFound = errors.New("Quotation not found")
