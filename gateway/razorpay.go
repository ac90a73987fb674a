package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// RemoteOrder is the slice of the gateway's order object the service cares
// about.
type RemoteOrder struct {
	ID     string
	Status string
}

// Client wraps the Razorpay SDK for remote order creation and callback
// signature verification. It is constructed once at startup and injected into
// the handlers that need it.
type Client struct {
	api       *razorpay.Client
	keyID     string
	keySecret string
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		api:       razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

// KeyID returns the public key id used by the hosted checkout widget.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder creates an order on the gateway. Amount is in the smallest
// currency unit. Failures are not retried; the caller decides what to surface.
func (c *Client) CreateOrder(amount int64, currency string) (*RemoteOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  "rcpt_" + uuid.NewString(),
	}

	body, err := c.api.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("gateway order response missing id")
	}
	status, _ := body["status"].(string)

	return &RemoteOrder{ID: id, Status: status}, nil
}

// Signature computes the hex-encoded HMAC-SHA256 of "orderID|paymentID" keyed
// by the gateway secret. It must match what Razorpay computes byte for byte,
// since it authenticates the hosted checkout callback.
func (c *Client) Signature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature recomputes the expected signature and compares it to the
// claimed one in constant time.
func (c *Client) VerifySignature(orderID, paymentID, claimed string) bool {
	expected := c.Signature(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(claimed))
}
