package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestStageBuildValidation(t *testing.T) {
	cases := []struct {
		name  string
		stage Stage
		err   error
	}{
		{"empty name", Stage{Name: "  ", Qty: "1", Price: "10"}, ErrEmptyName},
		{"zero qty", Stage{Name: "Cable", Qty: "0", Price: "10"}, ErrInvalidQuantity},
		{"negative qty", Stage{Name: "Cable", Qty: "-2", Price: "10"}, ErrInvalidQuantity},
		{"non numeric qty", Stage{Name: "Cable", Qty: "abc", Price: "10"}, ErrInvalidQuantity},
		{"zero price", Stage{Name: "Cable", Qty: "1", Price: "0"}, ErrInvalidPrice},
		{"negative price", Stage{Name: "Cable", Qty: "1", Price: "-5"}, ErrInvalidPrice},
		{"non numeric price", Stage{Name: "Cable", Qty: "1", Price: "x"}, ErrInvalidPrice},
		{"infinite qty", Stage{Name: "Cable", Qty: "Inf", Price: "10"}, ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.stage.Build()
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestStageBuildComputesSubtotal(t *testing.T) {
	item, err := Stage{Name: " Cable ", Description: "HDMI", Qty: "2", Price: "50"}.Build()
	require.NoError(t, err)
	require.Equal(t, "Cable", item.Name)
	require.Equal(t, 100.0, item.Subtotal)
}

func TestLedgerAddEditDeleteScenario(t *testing.T) {
	var l Ledger

	require.NoError(t, l.AddOrUpdate(Item{Name: "Cable", Qty: 2, UnitPrice: 50}, nil))
	require.Equal(t, 100.0, l.Items[0].Subtotal)
	require.Equal(t, 100.0, l.Total)

	require.NoError(t, l.AddOrUpdate(Item{Name: "Mouse", Qty: 1, UnitPrice: 300}, nil))
	require.Equal(t, 400.0, l.Total)

	require.NoError(t, l.AddOrUpdate(Item{Name: "Cable", Qty: 3, UnitPrice: 50}, intPtr(0)))
	require.Equal(t, 150.0, l.Items[0].Subtotal)
	require.Equal(t, 450.0, l.Total)
	require.Len(t, l.Items, 2)
	require.Equal(t, "Mouse", l.Items[1].Name)

	require.NoError(t, l.Remove(1))
	require.Equal(t, 150.0, l.Total)
	require.Len(t, l.Items, 1)
}

func TestLedgerRejectsInvalidItemUnchanged(t *testing.T) {
	var l Ledger
	require.NoError(t, l.AddOrUpdate(Item{Name: "Cable", Qty: 2, UnitPrice: 50}, nil))

	require.ErrorIs(t, l.AddOrUpdate(Item{Name: "", Qty: 1, UnitPrice: 10}, nil), ErrEmptyName)
	require.ErrorIs(t, l.AddOrUpdate(Item{Name: "X", Qty: 0, UnitPrice: 10}, nil), ErrInvalidQuantity)
	require.ErrorIs(t, l.AddOrUpdate(Item{Name: "X", Qty: 1, UnitPrice: -3}, nil), ErrInvalidPrice)

	require.Len(t, l.Items, 1)
	require.Equal(t, 100.0, l.Total)
}

func TestLedgerSubtotalAlwaysRecomputed(t *testing.T) {
	var l Ledger
	// A stale subtotal on the way in must be overwritten.
	require.NoError(t, l.AddOrUpdate(Item{Name: "Cable", Qty: 4, UnitPrice: 25, Subtotal: 1}, nil))
	require.Equal(t, 100.0, l.Items[0].Subtotal)
	require.Equal(t, 100.0, l.Total)
}

func TestLedgerTotalMatchesResumAfterAnySequence(t *testing.T) {
	var l Ledger
	items := []Item{
		{Name: "A", Qty: 1, UnitPrice: 10},
		{Name: "B", Qty: 3, UnitPrice: 7.5},
		{Name: "C", Qty: 2, UnitPrice: 99.99},
		{Name: "D", Qty: 10, UnitPrice: 0.01},
	}
	for _, it := range items {
		require.NoError(t, l.AddOrUpdate(it, nil))
	}
	require.NoError(t, l.AddOrUpdate(Item{Name: "B2", Qty: 4, UnitPrice: 2}, intPtr(1)))
	require.NoError(t, l.Remove(2))

	var resum float64
	for _, it := range l.Items {
		resum += it.Qty * it.UnitPrice
	}
	require.Equal(t, resum, l.Total)
}

func TestLedgerRemoveOutOfRange(t *testing.T) {
	var l Ledger
	require.ErrorIs(t, l.Remove(0), ErrIndexOutOfRange)
	require.NoError(t, l.AddOrUpdate(Item{Name: "A", Qty: 1, UnitPrice: 1}, nil))
	require.ErrorIs(t, l.Remove(-1), ErrIndexOutOfRange)
	require.ErrorIs(t, l.Remove(1), ErrIndexOutOfRange)
	require.ErrorIs(t, l.AddOrUpdate(Item{Name: "B", Qty: 1, UnitPrice: 1}, intPtr(5)), ErrIndexOutOfRange)
}

func TestValidateForSubmit(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	full := Ledger{
		PartyName:      "ACME Traders",
		ContactNumber:  "9876543210",
		DocumentNumber: "PUR-1700000000000",
		Date:           date,
		Category:       "Accessories Section",
		Items:          []Item{{Name: "Cable", Qty: 1, UnitPrice: 10, Subtotal: 10}},
	}
	require.NoError(t, full.ValidateForSubmit())

	missing := full
	missing.PartyName = ""
	require.ErrorIs(t, missing.ValidateForSubmit(), ErrMissingFields)

	missing = full
	missing.ContactNumber = "  "
	require.ErrorIs(t, missing.ValidateForSubmit(), ErrMissingFields)

	missing = full
	missing.Date = time.Time{}
	require.ErrorIs(t, missing.ValidateForSubmit(), ErrMissingFields)

	empty := full
	empty.Items = nil
	require.ErrorIs(t, empty.ValidateForSubmit(), ErrNoItems)
}
