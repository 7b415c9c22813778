package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrGatewayUnavailable = fmt.Errorf("payment gateway: %w", api.ErrGatewayUnavailable)

// RazorpayClient opens orders through the Razorpay SDK.
type RazorpayClient struct {
	client   *razorpay.Client
	keyID    string
	currency string
}

// NewRazorpayClient builds an SDK client. baseURL is the API host without
// the version segment; empty keeps the SDK default. The SDK counts timeouts
// in whole seconds, so timeout is rounded up.
func NewRazorpayClient(keyID, keySecret, baseURL, currency string, timeout time.Duration) *RazorpayClient {
	client := razorpay.NewClient(keyID, keySecret)
	if baseURL != "" {
		client.Order.Request.BaseURL = strings.TrimRight(baseURL, "/")
	}
	client.Order.Request.SetTimeout(timeoutSeconds(timeout))

	return &RazorpayClient{
		client:   client,
		keyID:    keyID,
		currency: currency,
	}
}

func timeoutSeconds(d time.Duration) int16 {
	secs := (d + time.Second - 1) / time.Second
	switch {
	case secs < 1:
		return 1
	case secs > 300:
		return 300
	}
	return int16(secs)
}

func (r *RazorpayClient) KeyID() string {
	return r.keyID
}

func (r *RazorpayClient) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.client.Order.Create(map[string]interface{}{
		"amount":          amountPaise,
		"currency":        r.currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	order := orderFromBody(body)
	if order.ID == "" {
		return nil, fmt.Errorf("%w: order without id", ErrGatewayUnavailable)
	}
	if order.Amount == 0 {
		order.Amount = amountPaise
	}
	if order.Receipt == "" {
		order.Receipt = receipt
	}
	return order, nil
}

// orderFromBody reads the decoded JSON the SDK returns. Numbers arrive as float64.
func orderFromBody(body map[string]interface{}) *Order {
	str := func(key string) string {
		s, _ := body[key].(string)
		return s
	}

	order := &Order{
		ID:       str("id"),
		Currency: str("currency"),
		Receipt:  str("receipt"),
		Status:   str("status"),
	}
	switch amount := body["amount"].(type) {
	case float64:
		order.Amount = int64(amount)
	case int64:
		order.Amount = amount
	case int:
		order.Amount = int64(amount)
	}
	return order
}
