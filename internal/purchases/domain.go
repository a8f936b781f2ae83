// Package purchases records supplier purchases: the priced item ledger a
// purchase is composed from, the two-phase payment state (paid at entry,
// remaining due settled later) and the list the Excel export reads.
package purchases

import (
	"errors"
	"time"

	"github.com/itplanet/retail-backend/internal/ledger"
)

// Purchase is one supplier purchase document.
type Purchase struct {
	ID             int64         `json:"id"`
	PurchaseNumber string        `json:"purchase_number"`
	SupplierName   string        `json:"supplier_name"`
	MobileNumber   string        `json:"mobile_number"`
	PurchaseDate   time.Time     `json:"purchase_date"`
	Categories     string        `json:"categories"`
	Products       []ledger.Item `json:"products"`
	Total          float64       `json:"total"`
	Paid           float64       `json:"paid"`
	Due            float64       `json:"due"`
	PaymentStatus  string        `json:"payment_status"`
	Location       string        `json:"location"`
	CreatedBy      string        `json:"created_by"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ErrNotFound indicates the purchase does not exist.
var ErrNotFound = errors.New("Purchase not found")
