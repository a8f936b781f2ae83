package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/itplanet/retail-backend/internal/ledger"
)

func TestWorkbookColumnOrder(t *testing.T) {
	headers := []string{"Purchase Number", "Supplier Name", "Total"}
	rows := [][]any{
		{"PUR-1700000000000", "Balaji Distributors", 500.0},
		{"PUR-1700000000001", "Shree Traders", 1200.0},
	}

	book, err := Workbook("Purchases", headers, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Purchases"}, f.GetSheetList())

	got, err := f.GetRows("Purchases")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, headers, got[0])
	require.Equal(t, "PUR-1700000000000", got[1][0])
	require.Equal(t, "Shree Traders", got[2][1])
}

func TestWorkbookEmptyRows(t *testing.T) {
	book, err := Workbook("Invoices", []string{"Invoice Number"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestPDFRendersDocument(t *testing.T) {
	doc := Document{
		Kind:         "Invoice",
		Number:       "INV-1700000000000",
		Date:         time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		PartyLabel:   "Client",
		PartyName:    "Rahul Traders",
		MobileNumber: "9012345678",
		Location:     "Nanded",
		Items: []ledger.Item{
			{Name: "HDMI Cable", Qty: 2, UnitPrice: 50, Subtotal: 100},
		},
		Total:        100,
		Paid:         40,
		Due:          60,
		ShowPayments: true,
	}

	out, err := PDF(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	require.Greater(t, len(out), 500)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "Rahul Traders_invoice.pdf", FileName(" Rahul Traders ", "Invoice"))
	require.Equal(t, "Shree Enterprises_quotation.pdf", FileName("Shree Enterprises", "Quotation"))
}
