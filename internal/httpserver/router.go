package httpserver

import (
	"context"
	"embed"
	"html/template"
	"time"

	"shopwidget/internal/catalog"
	"shopwidget/internal/logging"
	"shopwidget/internal/render"
	"shopwidget/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Pinger reports catalog database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Sessions   *session.Registry
	Catalog    catalog.Source
	Money      render.Money
	DB         Pinger
	SessionTTL time.Duration
	// CORSAllowOrigins enables CORS for the listed origins; "*" allows any.
	CORSAllowOrigins []string
}

// buildRouter wires routes for the widget.
func buildRouter(logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(logging.CorrelationID(), logging.Gin(logger), gin.Recovery())
	if c, ok := corsConfig(deps.CORSAllowOrigins); ok {
		router.Use(cors.New(c))
	}
	router.SetHTMLTemplate(tmpl)

	h := &handler{
		sessions:   deps.Sessions,
		catalog:    deps.Catalog,
		money:      deps.Money,
		sessionTTL: deps.SessionTTL,
		logger:     logger,
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.DB))

	router.GET("/", h.page)
	router.GET("/widget/surface", h.surface)
	// Interactions the widget handles abort the chain; the rest fall through.
	router.POST("/interactions", h.interact, h.unhandledInteraction)

	return router, nil
}

func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", logging.HeaderCorrelationID},
		ExposeHeaders:    []string{logging.HeaderCorrelationID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = origins
	}
	return c, true
}
