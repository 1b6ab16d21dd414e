// Package render regenerates a widget's display surface from its store.
package render

import (
	"fmt"

	"shopwidget/internal/domain"
)

// Source is the read side of the item store.
type Source interface {
	CartItems() []domain.CartItem
	WishlistItems() []domain.WishlistItem
	InWishlist(id string) bool
}

// Money formats minor-unit amounts.
type Money interface {
	Format(cents int64) string
}

// Labels are the fixed texts used in rows.
type Labels struct {
	PerUnit string
	Remove  string
}

var DefaultLabels = Labels{PerUnit: "/ stuk", Remove: "Verwijder"}

// Renderer rebuilds surface regions. It never writes to the store.
type Renderer struct {
	src    Source
	money  Money
	labels Labels
}

func New(src Source, money Money, labels Labels) *Renderer {
	if labels.PerUnit == "" {
		labels.PerUnit = DefaultLabels.PerUnit
	}
	if labels.Remove == "" {
		labels.Remove = DefaultLabels.Remove
	}
	return &Renderer{src: src, money: money, labels: labels}
}

// RenderCart replaces the cart region with one row per cart entry and the sum of line totals.
func (r *Renderer) RenderCart(s *Surface) {
	items := r.src.CartItems()
	rows := make([]Row, 0, len(items))
	var total int64
	for _, it := range items {
		total += it.LineTotalCents()
		price := r.money.Format(it.PriceCents)
		rows = append(rows, Row{
			ID:           it.ID,
			Name:         it.Name,
			Label:        fmt.Sprintf("%s (%d)", it.Name, it.Quantity),
			Sub:          price + " " + r.labels.PerUnit,
			ImageRef:     it.ImageRef,
			Quantity:     it.Quantity,
			UnitPrice:    price,
			RemoveAction: ActionRemoveCart,
			RemoveLabel:  r.labels.Remove,
		})
	}
	s.Cart = Region{Rows: rows, Total: r.money.Format(total), TotalCents: total}
}

// RenderWishlist replaces the wishlist region with one row per entry and the sum of unit prices.
func (r *Renderer) RenderWishlist(s *Surface) {
	items := r.src.WishlistItems()
	rows := make([]Row, 0, len(items))
	var total int64
	for _, it := range items {
		total += it.PriceCents
		price := r.money.Format(it.PriceCents)
		rows = append(rows, Row{
			ID:           it.ID,
			Name:         it.Name,
			Label:        it.Name,
			Sub:          price,
			ImageRef:     it.ImageRef,
			UnitPrice:    price,
			RemoveAction: ActionRemoveWish,
			RemoveLabel:  r.labels.Remove,
		})
	}
	s.Wishlist = Region{Rows: rows, Total: r.money.Format(total), TotalCents: total}
}

// SyncWishButtons marks every toggle active iff its id is in the wishlist.
func (r *Renderer) SyncWishButtons(s *Surface) {
	for i := range s.Toggles {
		s.Toggles[i] = newToggle(s.Toggles[i].ID, r.src.InWishlist(s.Toggles[i].ID))
	}
}
