// Package ledger implements the priced line-item ledger shared by
// purchases, quotations and invoices: staged item validation, ordered
// item sequences with a derived running total, and document header
// validation ahead of submission.
package ledger

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Validation failures surfaced verbatim to the client.
var (
	ErrEmptyName       = errors.New("Product name cannot be empty!")
	ErrInvalidQuantity = errors.New("Quantity must be a positive number!")
	ErrInvalidPrice    = errors.New("Price must be a positive number!")
	ErrMissingFields   = errors.New("All fields are required!")
	ErrNoItems         = errors.New("Please add at least one product!")
	ErrIndexOutOfRange = errors.New("ledger: item index out of range")
)

// Item is a single priced entry. Subtotal is always derived from
// Qty and UnitPrice, never carried independently.
type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"price"`
	Subtotal    float64 `json:"sub_total"`
}

// Stage is the transient edit buffer an item passes through before it
// joins a ledger. Qty and Price arrive as raw strings from the form.
type Stage struct {
	Name        string
	Description string
	Qty         string
	Price       string
}

// Build validates the staged fields and produces an Item with its
// subtotal computed. The stage is left untouched on failure.
func (s Stage) Build() (Item, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return Item{}, ErrEmptyName
	}
	qty, err := strconv.ParseFloat(strings.TrimSpace(s.Qty), 64)
	if err != nil || math.IsInf(qty, 0) || math.IsNaN(qty) || qty <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(s.Price), 64)
	if err != nil || math.IsInf(price, 0) || math.IsNaN(price) || price <= 0 {
		return Item{}, ErrInvalidPrice
	}
	return Item{
		Name:        name,
		Description: s.Description,
		Qty:         qty,
		UnitPrice:   price,
		Subtotal:    qty * price,
	}, nil
}

// ValidateItem checks an already-parsed item against the staging rules.
func ValidateItem(it Item) error {
	if strings.TrimSpace(it.Name) == "" {
		return ErrEmptyName
	}
	if math.IsInf(it.Qty, 0) || math.IsNaN(it.Qty) || it.Qty <= 0 {
		return ErrInvalidQuantity
	}
	if math.IsInf(it.UnitPrice, 0) || math.IsNaN(it.UnitPrice) || it.UnitPrice <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Ledger owns the ordered item sequence and derived total for one
// document, plus the document-level header fields.
type Ledger struct {
	PartyName      string
	ContactNumber  string
	DocumentNumber string
	Date           time.Time
	Category       string
	Items          []Item
	Total          float64
}

// AddOrUpdate validates the item, recomputes its subtotal and either
// appends it or replaces the entry at editIndex in place. The total is
// resummed from all subtotals after the mutation.
func (l *Ledger) AddOrUpdate(it Item, editIndex *int) error {
	if err := ValidateItem(it); err != nil {
		return err
	}
	it.Subtotal = it.Qty * it.UnitPrice
	if editIndex != nil {
		if *editIndex < 0 || *editIndex >= len(l.Items) {
			return ErrIndexOutOfRange
		}
		l.Items[*editIndex] = it
	} else {
		l.Items = append(l.Items, it)
	}
	l.Total = sumSubtotals(l.Items)
	return nil
}

// Remove deletes the entry at index, shifting subsequent entries down.
func (l *Ledger) Remove(index int) error {
	if index < 0 || index >= len(l.Items) {
		return ErrIndexOutOfRange
	}
	l.Items = append(l.Items[:index], l.Items[index+1:]...)
	l.Total = sumSubtotals(l.Items)
	return nil
}

// ValidateForSubmit enforces the submission gate: every header field
// present and at least one item. No persistence happens before this.
func (l *Ledger) ValidateForSubmit() error {
	if strings.TrimSpace(l.PartyName) == "" ||
		strings.TrimSpace(l.ContactNumber) == "" ||
		strings.TrimSpace(l.DocumentNumber) == "" ||
		l.Date.IsZero() ||
		strings.TrimSpace(l.Category) == "" {
		return ErrMissingFields
	}
	if len(l.Items) == 0 {
		return ErrNoItems
	}
	return nil
}

func sumSubtotals(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal
	}
	return total
}
