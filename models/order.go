package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle status. The only transition is created -> paid, applied by a
// successful payment verification.
const (
	OrderCreated = "created"
	OrderPaid    = "paid"
)

// Payment verification outcome mirrored on the order record.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Order is the local record of a checkout attempt. OrderID is the gateway's
// own order identifier and correlates the record with the hosted checkout
// callback.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID       string             `bson:"order_id" json:"orderId"`
	Amount        int64              `bson:"amount" json:"amount"` // smallest currency unit (paise)
	Currency      string             `bson:"currency" json:"currency"`
	Status        string             `bson:"status" json:"status"`
	PaymentID     string             `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	PaymentStatus string             `bson:"payment_status" json:"paymentStatus"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
