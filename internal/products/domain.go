// Package products manages the inventory master: the catalogue rows the
// purchase and invoice forms draw from, and the stock levels sales
// decrement.
package products

import (
	"errors"
	"time"
)

// Product statuses shown in the catalogue.
const (
	StatusReady    = "Ready"
	StatusNotReady = "Not Ready"
)

// Product models one catalogue row scoped to a store location and
// section category.
type Product struct {
	ID           int64     `json:"id"`
	ProductName  string    `json:"product_name"`
	Description  string    `json:"description"`
	Quantity     float64   `json:"quantity"`
	Status       string    `json:"status"`
	SellingPrice float64   `json:"selling_price"`
	Categories   string    `json:"categories"`
	Location     string    `json:"location"`
	Brand        string    `json:"brand"`
	SKU          string    `json:"sku"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockAdjustment decrements (or restores) stock for one product by name
// within a location.
type StockAdjustment struct {
	ProductName string  `json:"product_name"`
	Location    string  `json:"location"`
	Qty         float64 `json:"qty"`
}

var (
	// ErrNotFound indicates the product does not exist.
	ErrNotFound = errors.New("Product not found")
	// ErrInsufficientStock triggered when an adjustment would drive stock negative.
	ErrInsufficientStock = errors.New("Insufficient stock for product")
)
