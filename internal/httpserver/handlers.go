package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"shopwidget/internal/catalog"
	"shopwidget/internal/domain"
	"shopwidget/internal/render"
	"shopwidget/internal/session"
	"shopwidget/internal/widget"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionCookie = "widget_session"

type handler struct {
	sessions   *session.Registry
	catalog    catalog.Source
	money      render.Money
	sessionTTL time.Duration
	logger     *zap.Logger
}

// interactionRequest is the attached data of an activated control.
type interactionRequest struct {
	Control string `form:"control" json:"control"`
	ID      string `form:"id" json:"id"`
	Name    string `form:"name" json:"name"`
	Price   string `form:"price" json:"price"`
	Img     string `form:"img" json:"img"`
	Action  string `form:"action" json:"action"`
	Kind    string `form:"kind" json:"kind"`
}

func (r interactionRequest) interaction() widget.Interaction {
	data := make(map[string]string, 6)
	for k, v := range map[string]string{
		widget.DataID:     r.ID,
		widget.DataName:   r.Name,
		widget.DataPrice:  r.Price,
		widget.DataImage:  r.Img,
		widget.DataAction: r.Action,
		widget.DataKind:   r.Kind,
	} {
		if v != "" {
			data[k] = v
		}
	}
	return widget.Interaction{Classes: widget.ParseClasses(r.Control), Data: data}
}

type productView struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       string
	PriceValue  string
	Toggle      render.Toggle
}

type pageView struct {
	Products []productView
	Surface  render.Surface
}

func (h *handler) page(c *gin.Context) {
	w, err := h.openSession(c, false)
	if err != nil {
		h.fail(c, err)
		return
	}
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.fail(c, fmt.Errorf("list catalog: %w", err))
		return
	}
	surface := w.Mount(catalog.ToggleIDs(products))

	view := pageView{Surface: surface, Products: make([]productView, 0, len(products))}
	for _, p := range products {
		id := catalog.ItemID(p)
		tg, _ := surface.Toggle(id)
		view.Products = append(view.Products, productView{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Price:       h.money.Format(p.PriceCents),
			PriceValue:  decimalString(p.PriceCents),
			Toggle:      tg,
		})
	}
	c.HTML(http.StatusOK, "page.tmpl", view)
}

func (h *handler) surface(c *gin.Context) {
	w, err := h.openSession(c, true)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, w.Surface())
}

// interact is the delegated handler for every control on the page. A handled
// interaction is answered here and the chain is aborted.
func (h *handler) interact(c *gin.Context) {
	var req interactionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := h.openSession(c, true)
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := w.Dispatch(req.interaction())
	if err != nil {
		h.fail(c, err)
		return
	}
	if !res.Handled {
		return
	}

	c.Abort()
	if wantsJSON(c) {
		c.JSON(http.StatusOK, res.Surface)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handler) unhandledInteraction(c *gin.Context) {
	if wantsJSON(c) {
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// openSession resolves the caller's widget, creating one when the cookie is
// missing or stale. With mount set, a new widget gets the catalog's toggles.
// The cookie is re-issued on every request while sessions expire, so its
// lifetime follows the registry's idle timeout.
func (h *handler) openSession(c *gin.Context, mount bool) (*widget.Widget, error) {
	id, _ := c.Cookie(sessionCookie)
	sid, w, created := h.sessions.Open(id)
	if created && mount {
		if err := h.mountCatalog(c.Request.Context(), w); err != nil {
			return nil, err
		}
	}
	if created || h.sessionTTL > 0 {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sid, int(h.sessionTTL.Seconds()), "/", "", false, true)
	}
	return w, nil
}

func (h *handler) mountCatalog(ctx context.Context, w *widget.Widget) error {
	products, err := h.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}
	w.Mount(catalog.ToggleIDs(products))
	return nil
}

func (h *handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidPrice) || errors.Is(err, domain.ErrMissingID) || errors.Is(err, domain.ErrUnknownKind) {
		status = http.StatusBadRequest
	} else {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	_ = c.Error(err)
	if wantsJSON(c) || status == http.StatusInternalServerError {
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Abort()
	c.String(status, err.Error())
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func decimalString(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
