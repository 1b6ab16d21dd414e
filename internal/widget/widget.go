// Package widget implements the cart and wishlist widget: a store, its
// rendered surface and the delegated dispatcher that ties them together.
package widget

import (
	"fmt"
	"sync"

	"shopwidget/internal/render"
	"shopwidget/internal/store"

	"go.uber.org/zap"
)

// Result describes how an interaction was handled.
type Result struct {
	Action Action
	// Handled is set when the interaction was consumed: its default behaviour
	// is suppressed and it must not reach outer handlers.
	Handled bool
	Surface render.Surface
}

type Options struct {
	Money     render.Money
	Labels    render.Labels
	ToggleIDs []string
	Logger    *zap.Logger
}

// Widget owns one store and one surface. Dispatch runs each interaction to
// completion under a lock, so interactions never interleave.
type Widget struct {
	mu       sync.Mutex
	store    *store.Store
	renderer *render.Renderer
	surface  *render.Surface
	logger   *zap.Logger
}

// New constructs a widget and performs the initial render and toggle sync.
func New(opts Options) *Widget {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	st := store.New()
	w := &Widget{
		store:    st,
		renderer: render.New(st, opts.Money, opts.Labels),
		surface:  render.NewSurface(opts.ToggleIDs...),
		logger:   logger,
	}
	w.renderer.RenderCart(w.surface)
	w.renderer.RenderWishlist(w.surface)
	w.renderer.SyncWishButtons(w.surface)
	return w
}

// Dispatch classifies the interaction and applies it. Unclassified interactions
// are ignored and leave the surface untouched.
func (w *Widget) Dispatch(in Interaction) (Result, error) {
	action := Classify(in.Classes)

	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	switch action {
	case ActionAddToCart:
		err = w.addToCart(in)
	case ActionToggleWish:
		err = w.toggleWish(in)
	case ActionRemove:
		err = w.remove(in)
	default:
		return Result{Action: ActionNone, Surface: w.surface.Clone()}, nil
	}
	if err != nil {
		w.logger.Warn("interaction rejected", zap.Stringer("action", action), zap.Error(err))
		return Result{Action: action, Handled: true, Surface: w.surface.Clone()}, err
	}
	return Result{Action: action, Handled: true, Surface: w.surface.Clone()}, nil
}

// Surface returns a snapshot of the current display surface.
func (w *Widget) Surface() render.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface.Clone()
}

// Mount replaces the wishlist toggles with the controls currently on the page
// and syncs them against the wishlist.
func (w *Widget) Mount(toggleIDs []string) render.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	fresh := render.NewSurface(toggleIDs...)
	w.surface.Toggles = fresh.Toggles
	w.renderer.SyncWishButtons(w.surface)
	return w.surface.Clone()
}

func (w *Widget) addToCart(in Interaction) error {
	item, err := in.itemData()
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	got := w.store.AddToCart(item.ID, item.Name, item.PriceCents, item.ImageRef)
	w.logger.Info("added to cart", zap.String("id", got.ID), zap.Int("quantity", got.Quantity))
	w.renderer.RenderCart(w.surface)
	return nil
}

func (w *Widget) toggleWish(in Interaction) error {
	item, err := in.itemData()
	if err != nil {
		return fmt.Errorf("toggle wishlist: %w", err)
	}
	present := w.store.ToggleWish(item.ID, item.Name, item.PriceCents, item.ImageRef)
	w.logger.Info("toggled wishlist", zap.String("id", item.ID), zap.Bool("present", present))
	w.renderer.RenderWishlist(w.surface)
	w.renderer.SyncWishButtons(w.surface)
	return nil
}

// remove deletes the item named by the control's target list. A control
// without an id or with an unknown target removes nothing, but both lists
// and the toggles are still re-rendered.
func (w *Widget) remove(in Interaction) error {
	id := in.value(DataID)
	target := in.value(DataAction)
	if target == "" {
		target = in.value(DataKind)
	}
	var removed bool
	kind, err := store.ParseKind(target)
	switch {
	case id == "":
		w.logger.Debug("remove without id", zap.String("target", target))
	case err != nil:
		w.logger.Debug("remove with unknown target", zap.String("id", id), zap.String("target", target))
	default:
		if removed, err = w.store.Remove(kind, id); err != nil {
			return fmt.Errorf("remove: %w", err)
		}
		w.logger.Info("removed item", zap.String("id", id), zap.Stringer("kind", kind), zap.Bool("removed", removed))
	}
	w.renderer.RenderCart(w.surface)
	w.renderer.RenderWishlist(w.surface)
	w.renderer.SyncWishButtons(w.surface)
	return nil
}
