package quotations

import "github.com/itplanet/retail-backend/internal/ledger"

// CreateQuotationRequest carries the add-quotation form payload. The
// quotation number and total are assigned server-side.
type CreateQuotationRequest struct {
	CustomerName  string        `json:"customer_name" validate:"required"`
	MobileNumber  string        `json:"mobile_number" validate:"required"`
	QuotationDate string        `json:"quotation_date" validate:"required"`
	Categories    string        `json:"categories" validate:"required"`
	Products      []ledger.Item `json:"products"`
	Location      string        `json:"location" validate:"required"`
}

// ListFilter scopes quotation queries.
type ListFilter struct {
	Location string
	Category string
}
