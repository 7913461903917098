package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dwikikusuma/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a JSON 500 and logs it.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if log != nil {
			log.Error("panic recovered", slog.String("path", c.Request.URL.Path), slog.String("panic", fmt.Sprint(recovered)))
		}
		httpx.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	})
}

// NotFound answers unknown routes: JSON under /api, the HTML page elsewhere.
func NotFound(page gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if page == nil || strings.HasPrefix(c.Request.URL.Path, "/api") {
			httpx.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		page(c)
	}
}
