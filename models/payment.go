package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses. The failed state exists in the schema but no endpoint
// drives a payment into it in the current scope.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// PaymentProviderMock is the only provider; the mock lifecycle never talks
// to a real payment network.
const PaymentProviderMock = "mock"

// ClientSecretPrefix is prepended to the transaction id to form the opaque
// client secret returned on intent creation. The exact format is part of
// the API contract.
const ClientSecretPrefix = "mock_secret_"

// Payment tracks a mocked payment-intent lifecycle. TransactionID is set
// equal to the record's own identifier after creation.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookingID     string             `bson:"booking_id" json:"booking_id"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	Provider      string             `bson:"provider" json:"provider"`
	Status        string             `bson:"status" json:"status"`
	TransactionID string             `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
