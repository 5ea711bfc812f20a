// Package domain defines the billing ports.
package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrChargeDeclined is returned when the payment provider rejects a
// charge.
var ErrChargeDeclined = errors.New("charge declined")

// Charge is a completed payment.
type Charge struct {
	ID     string
	UserID uuid.UUID
	Amount float64
}

// PaymentGateway charges the user. Implementations talk to the
// payment provider; the checkout flow never sees provider details.
type PaymentGateway interface {
	Charge(ctx context.Context, userID uuid.UUID, amount float64, description string) (*Charge, error)
}
