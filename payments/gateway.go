package payments

import (
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway creates payment orders with the external payment processor.
type Gateway interface {
	CreateOrder(amountPaise int64, currency string) (orderID string, err error)
}

// RazorpayGateway is the razorpay-backed Gateway.
type RazorpayGateway struct {
	client *razorpay.Client
	KeyID  string
}

// NewRazorpayGateway builds the gateway from RAZORPAY_KEY_ID and
// RAZORPAY_KEY_SECRET.
func NewRazorpayGateway() *RazorpayGateway {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, os.Getenv("RAZORPAY_KEY_SECRET")),
		KeyID:  keyID,
	}
}

func (g *RazorpayGateway) CreateOrder(amountPaise int64, currency string) (string, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"payment_capture": 1,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", err
	}
	id, ok := order["id"].(string)
	if !ok {
		return "", fmt.Errorf("gateway returned no order id")
	}
	return id, nil
}
