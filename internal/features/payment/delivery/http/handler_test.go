package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-backend/internal/features/payment/service"
)

type fakeGateway struct {
	amountPaise int64
}

func (g *fakeGateway) CreateOrder(amountPaise int64, currency, receipt string) (map[string]interface{}, error) {
	g.amountPaise = amountPaise
	return map[string]interface{}{
		"id":       "order_test123",
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}, nil
}

func newTestRouter(gw service.OrderCreator, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPaymentHandler(service.NewPaymentService(gw, secret)).RegisterRoutes(&router.RouterGroup)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrder(t *testing.T) {
	gw := &fakeGateway{}
	router := newTestRouter(gw, "secret")

	w := postJSON(t, router, "/create-order", map[string]interface{}{"amount": 100})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	order, ok := resp["order"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "order_test123", order["id"])
	assert.Equal(t, int64(10000), gw.amountPaise)
}

func TestCreateOrder_InvalidAmount(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, "secret")

	for _, body := range []map[string]interface{}{
		{},
		{"amount": 0},
		{"amount": -5},
	} {
		w := postJSON(t, router, "/create-order", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestVerifyPayment(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, "secret")
	sig := service.Signature("secret", "order_1", "pay_1")

	w := postJSON(t, router, "/verify-payment", map[string]interface{}{
		"orderId":   "order_1",
		"paymentId": "pay_1",
		"signature": sig,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Payment verified", resp["message"])
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, "secret")

	w := postJSON(t, router, "/verify-payment", map[string]interface{}{
		"orderId":   "order_1",
		"paymentId": "pay_1",
		"signature": "deadbeef",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyPayment_MissingFields(t *testing.T) {
	router := newTestRouter(&fakeGateway{}, "secret")

	w := postJSON(t, router, "/verify-payment", map[string]interface{}{
		"orderId": "order_1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
