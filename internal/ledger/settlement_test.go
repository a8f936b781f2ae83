package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemaining(t *testing.T) {
	require.Equal(t, 600.0, Remaining(1000, 400))
	require.Equal(t, 0.0, Remaining(400, 400))
	// Overpayment may go negative during input.
	require.Equal(t, -100.0, Remaining(300, 400))
}

func TestSettle(t *testing.T) {
	due, err := Settle(1000, 400)
	require.NoError(t, err)
	require.Equal(t, 600.0, due)

	due, err = Settle(400, 400)
	require.NoError(t, err)
	require.Equal(t, 0.0, due)

	_, err = Settle(300, 400)
	require.ErrorIs(t, err, ErrOverpayment)

	_, err = Settle(300, 0)
	require.ErrorIs(t, err, ErrNonPositivePayment)

	_, err = Settle(300, -10)
	require.ErrorIs(t, err, ErrNonPositivePayment)
}

func TestPaymentStatus(t *testing.T) {
	require.Equal(t, PaymentStatusDue, PaymentStatus(500, 0))
	require.Equal(t, PaymentStatusPartial, PaymentStatus(500, 100))
	require.Equal(t, PaymentStatusPaid, PaymentStatus(500, 500))
	require.Equal(t, PaymentStatusPaid, PaymentStatus(500, 600))
}
