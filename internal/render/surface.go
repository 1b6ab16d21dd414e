package render

// Action tags carried by remove controls.
const (
	ActionRemoveCart = "remove-cart"
	ActionRemoveWish = "remove-wish"
)

// Row is one rendered list entry.
type Row struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Label        string `json:"label"`
	Sub          string `json:"sub"`
	ImageRef     string `json:"img"`
	Quantity     int    `json:"qty,omitempty"`
	UnitPrice    string `json:"unitPrice"`
	RemoveAction string `json:"removeAction"`
	RemoveLabel  string `json:"removeLabel"`
}

// Region is a list plus its running total.
type Region struct {
	Rows       []Row  `json:"rows"`
	Total      string `json:"total"`
	TotalCents int64  `json:"totalCents"`
}

// Toggle is a wishlist control placed next to a catalog entry.
type Toggle struct {
	ID          string `json:"id"`
	Active      bool   `json:"active"`
	Class       string `json:"class"`
	AriaPressed string `json:"ariaPressed"`
}

// Surface is the display owned by one widget: the cart and wishlist regions
// it regenerates, and the wishlist toggles it keeps in sync.
type Surface struct {
	Cart     Region   `json:"cart"`
	Wishlist Region   `json:"wishlist"`
	Toggles  []Toggle `json:"toggles"`
}

// NewSurface creates an empty surface with one inactive toggle per id.
// Duplicate ids produce duplicate toggles, as with repeated controls on a page.
func NewSurface(toggleIDs ...string) *Surface {
	s := &Surface{
		Cart:     Region{Rows: []Row{}},
		Wishlist: Region{Rows: []Row{}},
		Toggles:  make([]Toggle, 0, len(toggleIDs)),
	}
	for _, id := range toggleIDs {
		s.Toggles = append(s.Toggles, newToggle(id, false))
	}
	return s
}

// Toggle returns the first toggle with the given id.
func (s Surface) Toggle(id string) (Toggle, bool) {
	for _, t := range s.Toggles {
		if t.ID == id {
			return t, true
		}
	}
	return Toggle{}, false
}

// Clone returns a deep copy that is safe to hand out while the widget keeps mutating s.
func (s *Surface) Clone() Surface {
	out := Surface{
		Cart:     cloneRegion(s.Cart),
		Wishlist: cloneRegion(s.Wishlist),
		Toggles:  append([]Toggle(nil), s.Toggles...),
	}
	if out.Toggles == nil {
		out.Toggles = []Toggle{}
	}
	return out
}

func cloneRegion(r Region) Region {
	rows := make([]Row, len(r.Rows))
	copy(rows, r.Rows)
	return Region{Rows: rows, Total: r.Total, TotalCents: r.TotalCents}
}

func newToggle(id string, active bool) Toggle {
	t := Toggle{ID: id, Class: "wish", AriaPressed: "false"}
	if active {
		t.Active = true
		t.Class = "wish active"
		t.AriaPressed = "true"
	}
	return t
}
