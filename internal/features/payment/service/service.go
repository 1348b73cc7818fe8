package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strconv"
	"time"

	apperrors "onboarding-backend/internal/common/errors"
)

const orderCurrency = "INR"

// OrderCreator is the external payment gateway boundary.
type OrderCreator interface {
	CreateOrder(amountPaise int64, currency, receipt string) (map[string]interface{}, error)
}

// PaymentService brokers the gateway order/verify handshake. Nothing is
// persisted; verification is a pure function of the inputs and the secret.
type PaymentService interface {
	CreateOrder(amount float64) (map[string]interface{}, error)
	VerifyPayment(orderID, paymentID, signature string) error
}

type paymentService struct {
	gateway OrderCreator
	secret  string

	// overridable for tests
	now func() time.Time
}

func NewPaymentService(gateway OrderCreator, secret string) PaymentService {
	return &paymentService{
		gateway: gateway,
		secret:  secret,
		now:     time.Now,
	}
}

func (s *paymentService) CreateOrder(amount float64) (map[string]interface{}, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("Invalid amount")
	}

	// Gateway takes minor units: rupees to paise.
	amountPaise := int64(math.Round(amount * 100))
	receipt := "receipt_" + strconv.FormatInt(s.now().UnixMilli(), 10)

	order, err := s.gateway.CreateOrder(amountPaise, orderCurrency, receipt)
	if err != nil {
		return nil, apperrors.NewDependencyError("order creation", err)
	}
	return order, nil
}

func (s *paymentService) VerifyPayment(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return apperrors.NewValidationError("Missing fields")
	}

	expected := Signature(s.secret, orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperrors.NewAuthenticationError("Invalid signature")
	}
	return nil
}

// Signature computes the hex-encoded HMAC-SHA256 of "orderID|paymentID".
func Signature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
