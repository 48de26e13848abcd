package booking

import (
	"bytes"
	"context"
	"testing"

	"cabtour/models"
	"cabtour/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	for in, want := range map[float64]string{
		0:         "0.00",
		2200:      "2,200.00",
		24999.5:   "24,999.50",
		1234567.8: "1,234,567.80",
		-950:      "-950.00",
	} {
		assert.Equal(t, want, formatAmount(in))
	}
}

func TestVoucher(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := f.createPending(t, "u1")

	data, name, err := f.svc.Voucher(ctx, customer("u1"), b.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, "voucher-"+b.BookingReference+".pdf", name)

	_, _, err = f.svc.Voucher(ctx, customer("u3"), b.ID)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	_, _, err = f.svc.Voucher(ctx, admin, b.ID)
	assert.NoError(t, err)

	_, err = f.svc.CancelOwnBooking(ctx, customer("u1"), b.ID)
	require.NoError(t, err)
	_, _, err = f.svc.Voucher(ctx, customer("u1"), b.ID)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestRenderVoucherHandlesMissingFields(t *testing.T) {
	data, err := RenderVoucher(&models.Booking{BookingReference: "BK-20261018-0000000000", Status: models.StatusPending})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
