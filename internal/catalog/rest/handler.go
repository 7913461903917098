package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
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
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)
	api.GET("/products/:id/suggestions", h.suggestions)
	api.GET("/categories", h.listCategories)
	api.GET("/categories/:category", h.productsByCategory)
	api.GET("/search", h.search)
}

func (h *Handler) listProducts(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be a non-negative integer")
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "offset must be a non-negative integer")
		return
	}

	page := h.svc.List(app.ListFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
		Offset:   offset,
		Limit:    limit,
	})
	httpx.OK(c, page.Products, httpx.WithTotal(page.Total), httpx.WithPage(page.Offset, page.Limit))
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetByID(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	httpx.OK(c, p)
}

// suggestions answers an empty list for an unknown product id.
func (h *Handler) suggestions(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "limit must be a non-negative integer")
		return
	}

	out := h.svc.SuggestionsFor(id, limit)
	httpx.OK(c, out, httpx.WithTotal(len(out)))
}

func (h *Handler) listCategories(c *gin.Context) {
	httpx.OK(c, h.svc.ListCategories())
}

func (h *Handler) productsByCategory(c *gin.Context) {
	category := c.Param("category")
	if !h.svc.IsKnownCategory(category) {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid category. Must be one of: "+knownCategories())
		return
	}

	out := h.svc.GetByCategory(category)
	httpx.OK(c, out, httpx.WithTotal(len(out)))
}

func (h *Handler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Search query is required")
		return
	}

	out := h.svc.Search(q)
	httpx.OK(c, out, httpx.WithTotal(len(out)), httpx.WithQuery(q))
}

func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid product ID")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative value")
	}
	return n, nil
}

func knownCategories() string {
	names := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		httpx.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
	case errors.Is(err, app.ErrInvalidInput):
		httpx.Error(c, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	default:
		_ = c.Error(err)
		httpx.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}
