package rest

import (
	"errors"
	"net/http"

	"github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/middleware"
	"github.com/dwikikusuma/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(api *gin.RouterGroup) {
	api.GET("/checkout/quote", h.quote)
	api.POST("/checkout", h.placeOrder)
}

func (h *Handler) quote(c *gin.Context) {
	q, err := h.svc.Quote(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	httpx.OK(c, q)
}

func (h *Handler) placeOrder(c *gin.Context) {
	_, err := h.svc.PlaceOrder(c.Request.Context(), middleware.SessionID(c))
	writeErr(c, err)
}

func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrEmptyCart):
		httpx.Error(c, http.StatusNotFound, "EMPTY_CART", "Cart is empty")
	case errors.Is(err, app.ErrNotImplemented):
		httpx.Error(c, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Checkout is not available yet")
	default:
		_ = c.Error(err)
		httpx.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}
