package domain

// CartItem is a cart entry. Quantity is always at least 1 while the item is stored.
type CartItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	ImageRef   string `json:"img"`
	Quantity   int    `json:"qty"`
}

// LineTotalCents is the unit price multiplied by the quantity.
func (c CartItem) LineTotalCents() int64 {
	return c.PriceCents * int64(c.Quantity)
}

type WishlistItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	ImageRef   string `json:"img"`
}
