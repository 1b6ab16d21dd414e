package widget

import (
	"strings"

	"shopwidget/internal/domain"
	"shopwidget/internal/money"
)

// Control classes recognised by the delegated handler.
const (
	ClassAddCart = "add-cart"
	ClassWish    = "wish"
	ClassRemove  = "remove"
)

// Attached data keys.
const (
	DataID     = "id"
	DataName   = "name"
	DataPrice  = "price"
	DataImage  = "img"
	DataAction = "action"
	DataKind   = "kind"
)

// Action is the kind of a classified interaction.
type Action int

const (
	ActionNone Action = iota
	ActionAddToCart
	ActionToggleWish
	ActionRemove
)

func (a Action) String() string {
	switch a {
	case ActionAddToCart:
		return "add-to-cart"
	case ActionToggleWish:
		return "toggle-wish"
	case ActionRemove:
		return "remove"
	default:
		return "none"
	}
}

// Interaction is one delegated activation: the classes found on the activated
// control and its ancestors, plus the control's attached data.
type Interaction struct {
	Classes []string
	Data    map[string]string
}

// ParseClasses splits a class attribute-like string ("remove extra") into tokens.
func ParseClasses(s string) []string {
	return strings.Fields(s)
}

// Classify applies the delegated precedence: add-to-cart, then wishlist toggle, then remove.
func Classify(classes []string) Action {
	var wish, remove bool
	for _, c := range classes {
		switch c {
		case ClassAddCart:
			return ActionAddToCart
		case ClassWish:
			wish = true
		case ClassRemove:
			remove = true
		}
	}
	switch {
	case wish:
		return ActionToggleWish
	case remove:
		return ActionRemove
	default:
		return ActionNone
	}
}

type itemData struct {
	ID         string
	Name       string
	PriceCents int64
	ImageRef   string
}

func (in Interaction) value(key string) string {
	if in.Data == nil {
		return ""
	}
	return strings.TrimSpace(in.Data[key])
}

func (in Interaction) itemData() (itemData, error) {
	id := in.value(DataID)
	if id == "" {
		return itemData{}, domain.ErrMissingID
	}
	cents, err := money.ParseCents(in.value(DataPrice))
	if err != nil {
		return itemData{}, err
	}
	return itemData{
		ID:         id,
		Name:       in.value(DataName),
		PriceCents: cents,
		ImageRef:   in.value(DataImage),
	}, nil
}
