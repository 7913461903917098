package web

import (
	"net/http"
	"time"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

type pageData struct {
	Title        string
	Message      string
	Categories   []string
	CartCount    int
	ProductCount int
	Category     string
	Products     []catalogdomain.Product
	Cart         cartdomain.Cart
}

type Handler struct {
	catalog *catalogapp.Service
	carts   *cartapp.Service
	pages   pages
	started time.Time
}

func NewHandler(catalog *catalogapp.Service, carts *cartapp.Service) (*Handler, error) {
	p, err := loadPages()
	if err != nil {
		return nil, err
	}
	return &Handler{
		catalog: catalog,
		carts:   carts,
		pages:   p,
		started: time.Now(),
	}, nil
}

// Register installs the page renderer and the page, asset and health routes.
func (h *Handler) Register(r *gin.Engine) {
	r.HTMLRender = h.pages
	r.StaticFS("/static", http.FS(staticFiles()))

	r.GET("/", h.home)
	r.GET("/category/:category", h.category)
	r.GET("/cart", h.cart)
	r.GET("/about", h.about)
	r.GET("/health", h.health)
}

func (h *Handler) base(c *gin.Context, title string) pageData {
	return pageData{
		Title:      title,
		Categories: h.catalog.ListCategories(),
		CartCount:  h.carts.GetSummary(middleware.SessionID(c)).ItemCount,
	}
}

func (h *Handler) home(c *gin.Context) {
	data := h.base(c, "Handicraft Store - Unique Handmade Products")
	data.ProductCount = len(h.catalog.All())
	c.HTML(http.StatusOK, "index", data)
}

func (h *Handler) category(c *gin.Context) {
	category := c.Param("category")
	products := h.catalog.GetByCategory(category)
	if len(products) == 0 {
		h.render404(c, "Category Not Found", "The requested category does not exist.")
		return
	}

	data := h.base(c, category+" Handicrafts")
	data.Category = category
	data.Products = products
	c.HTML(http.StatusOK, "category", data)
}

func (h *Handler) cart(c *gin.Context) {
	data := h.base(c, "Shopping Cart")
	data.Cart = h.carts.GetCart(middleware.SessionID(c))
	c.HTML(http.StatusOK, "cart", data)
}

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about", h.base(c, "About Us"))
}

// NotFound renders the HTML 404 page.
func (h *Handler) NotFound(c *gin.Context) {
	h.render404(c, "Page Not Found", "The page you are looking for does not exist.")
}

func (h *Handler) render404(c *gin.Context, title, msg string) {
	data := h.base(c, title)
	data.Message = msg
	c.HTML(http.StatusNotFound, "error", data)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"uptime":    time.Since(h.started).Seconds(),
	})
}
