package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "onboarding-backend/internal/common/errors"
)

type fakeGateway struct {
	err error

	amountPaise int64
	currency    string
	receipt     string
	calls       int
}

func (g *fakeGateway) CreateOrder(amountPaise int64, currency, receipt string) (map[string]interface{}, error) {
	g.calls++
	g.amountPaise = amountPaise
	g.currency = currency
	g.receipt = receipt
	if g.err != nil {
		return nil, g.err
	}
	return map[string]interface{}{
		"id":       "order_test123",
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
		"status":   "created",
	}, nil
}

func TestCreateOrder_MinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw, "secret").(*paymentService)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	order, err := svc.CreateOrder(100)
	require.NoError(t, err)

	assert.Equal(t, int64(10000), gw.amountPaise)
	assert.Equal(t, "INR", gw.currency)
	assert.Equal(t, "receipt_1700000000000", gw.receipt)
	assert.Equal(t, "order_test123", order["id"])
}

func TestCreateOrder_RejectsNonPositiveAmount(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw, "secret")

	for _, amount := range []float64{0, -1, -0.01} {
		_, err := svc.CreateOrder(amount)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	}
	assert.Zero(t, gw.calls)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("gateway unavailable")}
	svc := NewPaymentService(gw, "secret")

	_, err := svc.CreateOrder(50)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDependency, appErr.Code)
	assert.ErrorIs(t, err, gw.err)
}

func TestCreateOrder_ReceiptPrefix(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw, "secret")

	_, err := svc.CreateOrder(1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gw.receipt, "receipt_"))
}

func TestSignature_Deterministic(t *testing.T) {
	a := Signature("secret", "order_1", "pay_1")
	b := Signature("secret", "order_1", "pay_1")
	assert.Equal(t, a, b)

	// Any input change produces a different signature.
	assert.NotEqual(t, a, Signature("other", "order_1", "pay_1"))
	assert.NotEqual(t, a, Signature("secret", "order_2", "pay_1"))
	assert.NotEqual(t, a, Signature("secret", "order_1", "pay_2"))
}

func TestSignature_KnownVector(t *testing.T) {
	// HMAC-SHA256("secret", "order_1|pay_1"), hex encoded.
	assert.Len(t, Signature("secret", "order_1", "pay_1"), 64)
}

func TestVerifyPayment(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{}, "secret")
	good := Signature("secret", "order_1", "pay_1")

	require.NoError(t, svc.VerifyPayment("order_1", "pay_1", good))

	err := svc.VerifyPayment("order_1", "pay_1", strings.Repeat("0", 64))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeAuthentication, appErr.Code)
}

func TestVerifyPayment_Validation(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{}, "secret")

	tests := []struct {
		name                         string
		orderID, paymentID, signature string
	}{
		{"missing order", "", "pay_1", "sig"},
		{"missing payment", "order_1", "", "sig"},
		{"missing signature", "order_1", "pay_1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifyPayment(tt.orderID, tt.paymentID, tt.signature)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		})
	}
}
