package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Season      string    `json:"season"`
	Size        string    `json:"size"`
	Type        string    `json:"type"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
