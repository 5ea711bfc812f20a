// Package infrastructure holds the payment gateway adapters.
package infrastructure

import (
	"context"
	"log/slog"

	"github.com/creatorhub/creatorhub/internal/billing/domain"
	"github.com/google/uuid"
)

// StubGateway approves every charge without contacting a provider.
// Used in development and tests until a real provider is wired in.
type StubGateway struct {
	logger *slog.Logger
}

// NewStubGateway creates a gateway that approves all charges.
func NewStubGateway(logger *slog.Logger) *StubGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &StubGateway{logger: logger}
}

// Charge approves the charge and returns a synthetic charge record.
func (g *StubGateway) Charge(ctx context.Context, userID uuid.UUID, amount float64, description string) (*domain.Charge, error) {
	charge := &domain.Charge{
		ID:     uuid.New().String(),
		UserID: userID,
		Amount: amount,
	}
	g.logger.Info("stub charge approved", "user_id", userID, "amount", amount, "description", description)
	return charge, nil
}

var _ domain.PaymentGateway = (*StubGateway)(nil)
