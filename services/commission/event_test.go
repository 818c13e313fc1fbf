package commission

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayment_Defaults(t *testing.T) {
	p := DecodePayment("b1", "p1", map[string]interface{}{"amount": 50}, "INR")

	assert.Equal(t, "", p.Status)
	assert.Equal(t, "INR", p.Currency)
	assert.Equal(t, "unknown", p.Method)
	assert.Nil(t, p.GatewayMeta)
	assert.Equal(t, "b1", p.BookingID)
	assert.Equal(t, "p1", p.PaymentID)
}

func TestDecodePayment_Values(t *testing.T) {
	meta := map[string]interface{}{"razorpayPaymentId": "pay_123"}
	p := DecodePayment("b1", "p1", map[string]interface{}{
		"status":      "success",
		"amount":      "250.50",
		"currency":    "USD",
		"method":      "card",
		"gatewayMeta": meta,
	}, "INR")

	assert.Equal(t, "success", p.Status)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, "card", p.Method)
	assert.Equal(t, meta, p.GatewayMeta)
}

func TestDecodePayment_EmptyValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"nil", nil},
		{"false", false},
		{"empty string", ""},
		{"zero int", 0},
		{"zero int64", int64(0)},
		{"zero float", 0.0},
		{"NaN", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DecodePayment("b1", "p1", map[string]interface{}{
				"currency":    tt.value,
				"method":      tt.value,
				"gatewayMeta": tt.value,
			}, "INR")

			assert.Equal(t, "INR", p.Currency)
			assert.Equal(t, "unknown", p.Method)
			assert.Nil(t, p.GatewayMeta)
		})
	}
}

func TestDecodePayment_NonEmptyScalarsKept(t *testing.T) {
	p := DecodePayment("b1", "p1", map[string]interface{}{
		"method":      true,
		"gatewayMeta": "txn_9",
	}, "INR")

	assert.Equal(t, "true", p.Method)
	assert.Equal(t, "txn_9", p.GatewayMeta)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    float64
		wantErr bool
	}{
		{"float", 99.99, 99.99, false},
		{"int64 from firestore", int64(1000), 1000, false},
		{"int", 5, 5, false},
		{"numeric string", " 12.50 ", 12.5, false},
		{"json number", json.Number("42.1"), 42.1, false},
		{"absent", nil, 0, false},
		{"garbage string", "abc", 0, true},
		{"map", map[string]interface{}{"v": 1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseAmount_NaNString(t *testing.T) {
	got, err := ParseAmount("NaN")
	if err == nil {
		assert.True(t, math.IsNaN(got))
		_, err = ComputeSplit(got)
	}
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParseDocumentPath(t *testing.T) {
	b, p, err := ParseDocumentPath("bookings/b1/payments/p1")
	require.NoError(t, err)
	assert.Equal(t, "b1", b)
	assert.Equal(t, "p1", p)

	b, p, err = ParseDocumentPath("projects/quickfix/databases/(default)/documents/bookings/b2/payments/p2")
	require.NoError(t, err)
	assert.Equal(t, "b2", b)
	assert.Equal(t, "p2", p)

	for _, bad := range []string{
		"",
		"bookings/b1",
		"bookings/b1/refunds/r1",
		"users/u1/payments/p1",
		"bookings//payments/p1",
		"bookings/b1/payments/p1/extra/x",
	} {
		_, _, err := ParseDocumentPath(bad)
		assert.ErrorIs(t, err, ErrInvalidDocument, "path %q", bad)
	}
}
