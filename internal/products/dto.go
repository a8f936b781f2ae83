package products

// CreateProductRequest carries the add/update product form payload.
type CreateProductRequest struct {
	ProductName  string  `json:"product_name" validate:"required"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	Status       string  `json:"status"`
	SellingPrice float64 `json:"price" validate:"gte=0"`
	Categories   string  `json:"categories" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	Brand        string  `json:"brand"`
	SKU          string  `json:"sku"`
}

// UpdateStockRequest batches stock decrements after a sale.
type UpdateStockRequest struct {
	Items []StockAdjustment `json:"items" validate:"required,min=1,dive"`
}

// ListFilter scopes catalogue queries.
type ListFilter struct {
	Location string
	Category string
}
