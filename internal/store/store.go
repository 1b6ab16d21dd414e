// Package store holds the cart and wishlist collections of one widget.
//
// A Store is not safe for concurrent use; the owning widget serializes access.
package store

import (
	"slices"
	"strings"

	"shopwidget/internal/domain"
)

// Kind selects one of the two collections.
type Kind int

const (
	KindCart Kind = iota + 1
	KindWishlist
)

func (k Kind) String() string {
	switch k {
	case KindCart:
		return "cart"
	case KindWishlist:
		return "wishlist"
	default:
		return "unknown"
	}
}

// ParseKind accepts "cart"/"wishlist" and the remove action tags "remove-cart"/"remove-wish".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cart", "remove-cart":
		return KindCart, nil
	case "wishlist", "wish", "remove-wish":
		return KindWishlist, nil
	default:
		return 0, domain.ErrUnknownKind
	}
}

// Store keeps both collections keyed by item id, in insertion order.
type Store struct {
	cart     collection[domain.CartItem]
	wishlist collection[domain.WishlistItem]
}

func New() *Store {
	return &Store{
		cart:     newCollection[domain.CartItem](),
		wishlist: newCollection[domain.WishlistItem](),
	}
}

// AddToCart inserts the item with quantity 1, or increments the quantity of an existing entry.
// Name, price and image of an existing entry are left as first added.
func (s *Store) AddToCart(id, name string, priceCents int64, imageRef string) domain.CartItem {
	if item, ok := s.cart.get(id); ok {
		item.Quantity++
		return *item
	}
	item := &domain.CartItem{ID: id, Name: name, PriceCents: priceCents, ImageRef: imageRef, Quantity: 1}
	s.cart.put(id, item)
	return *item
}

// ToggleWish removes the item when present and inserts it otherwise.
// It reports whether the item is in the wishlist afterwards.
func (s *Store) ToggleWish(id, name string, priceCents int64, imageRef string) bool {
	if s.wishlist.delete(id) {
		return false
	}
	s.wishlist.put(id, &domain.WishlistItem{ID: id, Name: name, PriceCents: priceCents, ImageRef: imageRef})
	return true
}

// Remove deletes id from the selected collection. Absent ids are a no-op.
func (s *Store) Remove(kind Kind, id string) (bool, error) {
	switch kind {
	case KindCart:
		return s.cart.delete(id), nil
	case KindWishlist:
		return s.wishlist.delete(id), nil
	default:
		return false, domain.ErrUnknownKind
	}
}

func (s *Store) InWishlist(id string) bool {
	_, ok := s.wishlist.get(id)
	return ok
}

func (s *Store) InCart(id string) bool {
	_, ok := s.cart.get(id)
	return ok
}

// CartItems returns copies of the cart entries in insertion order.
func (s *Store) CartItems() []domain.CartItem {
	return s.cart.values()
}

// WishlistItems returns copies of the wishlist entries in insertion order.
func (s *Store) WishlistItems() []domain.WishlistItem {
	return s.wishlist.values()
}

// CartTotal is the sum of unit price times quantity over the cart.
func (s *Store) CartTotal() int64 {
	var total int64
	for _, id := range s.cart.order {
		total += s.cart.items[id].LineTotalCents()
	}
	return total
}

// WishlistTotal is the sum of unit prices over the wishlist.
func (s *Store) WishlistTotal() int64 {
	var total int64
	for _, id := range s.wishlist.order {
		total += s.wishlist.items[id].PriceCents
	}
	return total
}

func (s *Store) CartLen() int     { return len(s.cart.order) }
func (s *Store) WishlistLen() int { return len(s.wishlist.order) }

type collection[T any] struct {
	order []string
	items map[string]*T
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[string]*T)}
}

func (c *collection[T]) get(id string) (*T, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c *collection[T]) put(id string, item *T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *collection[T]) delete(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	return true
}

func (c *collection[T]) values() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}
