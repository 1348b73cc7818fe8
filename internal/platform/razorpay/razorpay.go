package razorpay

import (
	razorpay "github.com/razorpay/razorpay-go"
)

// Client wraps the Razorpay SDK behind the payment service's gateway
// interface.
type Client struct {
	rzp *razorpay.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{rzp: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder creates a gateway order for the given minor-unit amount and
// returns the gateway's response verbatim.
func (c *Client) CreateOrder(amountPaise int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	return c.rzp.Order.Create(data, nil)
}
