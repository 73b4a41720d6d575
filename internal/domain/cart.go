package domain

import "time"

// CartItem is a single line in a user's cart. Price and display attributes
// are snapshotted from the product at the time the item is added.
type CartItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Quantity   int       `json:"quantity"`
	Season     string    `json:"season,omitempty"`
	Size       string    `json:"size,omitempty"`
	Type       string    `json:"type,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
