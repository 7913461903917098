package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/events"
	"github.com/dwikikusuma/storefront/internal/middleware"
	"github.com/dwikikusuma/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc    *app.Service
	notify *events.Notifier
}

func NewHandler(svc *app.Service, notify *events.Notifier) *Handler {
	return &Handler{svc: svc, notify: notify}
}

func (h *Handler) Register(api *gin.RouterGroup) {
	g := api.Group("/cart")
	g.GET("", h.getCart)
	g.GET("/summary", h.summary)
	g.POST("/items", h.addItem)
	g.PUT("/items/:productId", h.updateItem)
	g.DELETE("/items/:productId", h.removeItem)
	g.DELETE("", h.clear)
}

// Ids and quantities may arrive as JSON numbers or numeric strings.
type addItemRequest struct {
	ProductID json.RawMessage `json:"productId"`
	Quantity  json.RawMessage `json:"quantity"`
}

type updateItemRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

func (h *Handler) getCart(c *gin.Context) {
	httpx.OK(c, h.svc.GetCart(middleware.SessionID(c)))
}

func (h *Handler) summary(c *gin.Context) {
	httpx.OK(c, h.svc.GetSummary(middleware.SessionID(c)))
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid request body")
		return
	}
	productID, ok := parseNumber(req.ProductID)
	if !ok || productID <= 0 {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid product ID")
		return
	}
	qty := 1
	if present(req.Quantity) {
		if qty, ok = parseNumber(req.Quantity); !ok {
			httpx.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be a positive number")
			return
		}
	}

	sid := middleware.SessionID(c)
	cart, err := h.svc.AddItem(sid, productID, qty)
	if err != nil {
		writeErr(c, err)
		return
	}

	h.publish(c, events.CartItemAdded, sid, productID, qty, cart)

	name := "Item"
	if idx, ok := cart.Find(productID); ok {
		name = cart.Items[idx].Name
	}
	httpx.Respond(c, http.StatusCreated, cart, httpx.WithMessage(name+" added to cart"))
}

func (h *Handler) updateItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", "Invalid quantity")
		return
	}
	qty, ok := parseNumber(req.Quantity)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", "Invalid quantity")
		return
	}

	sid := middleware.SessionID(c)
	cart, err := h.svc.UpdateItem(sid, productID, qty)
	if err != nil {
		writeErr(c, err)
		return
	}

	h.publish(c, events.CartItemUpdated, sid, productID, qty, cart)
	httpx.OK(c, cart, httpx.WithMessage("Cart updated"))
}

func (h *Handler) removeItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	sid := middleware.SessionID(c)
	cart := h.svc.RemoveItem(sid, productID)

	h.publish(c, events.CartItemRemoved, sid, productID, 0, cart)
	httpx.OK(c, cart, httpx.WithMessage("Item removed from cart"))
}

func (h *Handler) clear(c *gin.Context) {
	sid := middleware.SessionID(c)
	cart := h.svc.ClearCart(sid)

	h.publish(c, events.CartCleared, sid, 0, 0, cart)
	httpx.OK(c, cart, httpx.WithMessage("Cart cleared"))
}

func (h *Handler) publish(c *gin.Context, key, sid string, productID, qty int, cart domain.Cart) {
	h.notify.Cart(c.Request.Context(), key, events.CartEvent{
		SessionID: sid,
		ProductID: productID,
		Quantity:  qty,
		ItemCount: cart.ItemCount,
		Total:     cart.Total,
	})
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// parseNumber reads an integer sent either as a JSON number or as a string.
func parseNumber(raw json.RawMessage) (int, bool) {
	if !present(raw) {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil || id <= 0 {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid product ID")
		return 0, false
	}
	return id, true
}

// writeErr maps cart errors to responses. Every cart rule violation is a
// client error, including an unknown product id.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrProductNotFound):
		httpx.Error(c, http.StatusBadRequest, "PRODUCT_NOT_FOUND", err.Error())
	case errors.Is(err, app.ErrInsufficientStock):
		httpx.Error(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, app.ErrInvalidQuantity):
		httpx.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", err.Error())
	case errors.Is(err, app.ErrItemNotInCart):
		httpx.Error(c, http.StatusBadRequest, "ITEM_NOT_IN_CART", err.Error())
	default:
		_ = c.Error(err)
		httpx.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}
