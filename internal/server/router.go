package server

import (
	"errors"
	"log/slog"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartrest "github.com/dwikikusuma/storefront/internal/cart/rest"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogrest "github.com/dwikikusuma/storefront/internal/catalog/rest"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutrest "github.com/dwikikusuma/storefront/internal/checkout/rest"
	"github.com/dwikikusuma/storefront/internal/events"
	"github.com/dwikikusuma/storefront/internal/middleware"
	"github.com/dwikikusuma/storefront/internal/web"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "storefront"

type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Catalog  *catalogapp.Service
	Carts    *cartapp.Service
	Checkout *checkoutapp.Service
	Notifier *events.Notifier
}

// NewRouter wires middleware, the JSON API under /api and the HTML pages.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Catalog == nil || d.Carts == nil || d.Checkout == nil {
		return nil, errors.New("router: catalog, cart and checkout services are required")
	}
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	r.Use(
		otelgin.Middleware(serviceName),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.SecureHeaders(),
		middleware.CORS(d.Config.AllowedOrigins),
		middleware.Session(middleware.SessionOptions{
			Cookies: d.Config.SessionCookies,
			Secure:  d.Config.Production(),
		}),
	)

	limiter := middleware.NewRateLimiter(d.Config.RateLimitRequests, d.Config.RateLimitWindow, 0)
	api := r.Group("/api", limiter.Middleware())
	catalogrest.NewHandler(d.Catalog).Register(api)
	cartrest.NewHandler(d.Carts, d.Notifier).Register(api)
	checkoutrest.NewHandler(d.Checkout).Register(api)

	pages, err := web.NewHandler(d.Catalog, d.Carts)
	if err != nil {
		return nil, err
	}
	pages.Register(r)
	r.NoRoute(middleware.NotFound(pages.NotFound))

	return r, nil
}
