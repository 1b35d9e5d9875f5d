package infra

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayOrderCreator adapts the Razorpay SDK to the payment service's
// OrderCreator interface.
type RazorpayOrderCreator struct {
	client *razorpay.Client
}

func NewRazorpayOrderCreator(keyID, keySecret string) *RazorpayOrderCreator {
	return &RazorpayOrderCreator{client: razorpay.NewClient(keyID, keySecret)}
}

func (r *RazorpayOrderCreator) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order create: missing order id in response")
	}
	return orderID, nil
}
