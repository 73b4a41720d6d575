package domain

import "time"

// Order is the persisted confirmation of a completed payment. It is keyed by
// the processor's payment-intent id and written only by the webhook path;
// there is no client-side create and no update or cancel.
type Order struct {
	PaymentIntentID string    `json:"id"`
	UserID          string    `json:"-"`
	Status          string    `json:"status"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"createdAt"`
}

const OrderStatusCompleted = "completed"
