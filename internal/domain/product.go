package domain

import "time"

// Project groups a catalog; the widget serves the products of one project.
type Project struct {
	ID        string    `json:"id" db:"id"`
	Key       string    `json:"key" db:"key"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Product is a catalog entry. Its fields are the attached data of the
// add-to-cart and wishlist controls rendered next to it.
type Product struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"-"`
	Key         string    `json:"key"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
