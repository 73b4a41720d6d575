package order

import (
	"context"

	"tireshop/internal/domain"
)

// CompleteCheckoutInput carries the confirmed-payment facts the webhook
// extracted from the processor event. AmountCents is in minor units.
type CompleteCheckoutInput struct {
	PaymentIntentID string
	UserID          string
	AmountCents     int64
	Currency        string
}

type Repository interface {
	// CompleteCheckout writes the order record and clears the user's cart
	// in a single transaction. Replaying the same input overwrites the
	// order with identical values, so redelivered events are harmless.
	CompleteCheckout(ctx context.Context, in CompleteCheckoutInput) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
