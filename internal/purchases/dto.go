package purchases

import "github.com/itplanet/retail-backend/internal/ledger"

// CreatePurchaseRequest carries the add-purchase form payload. The
// purchase number, total, due and payment status are assigned
// server-side.
type CreatePurchaseRequest struct {
	SupplierName string        `json:"supplier_name" validate:"required"`
	MobileNumber string        `json:"mobile_number" validate:"required"`
	PurchaseDate string        `json:"purchase_date" validate:"required"`
	Categories   string        `json:"categories" validate:"required"`
	Products     []ledger.Item `json:"products"`
	Paid         float64       `json:"paid" validate:"gte=0"`
	Location     string        `json:"location" validate:"required"`
}

// SettleRequest records a further payment against the remaining due.
type SettleRequest struct {
	Paid float64 `json:"paid"`
}

// ListFilter scopes purchase queries.
type ListFilter struct {
	Location string
}
