package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/seed"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Total   *int            `json:"total"`
	Offset  *int            `json:"offset"`
	Limit   *int            `json:"limit"`
	Query   string          `json:"query"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := app.Load(context.Background(), seed.Embedded())
	require.NoError(t, err)

	r := gin.New()
	NewHandler(svc).Register(r.Group("/api"))
	return r
}

func do(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func products(t *testing.T, env envelope) []domain.Product {
	t.Helper()
	var out []domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestListProducts(t *testing.T) {
	r := newRouter(t)

	t.Run("all", func(t *testing.T) {
		w, env := do(t, r, "/api/products")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Len(t, products(t, env), 9)
		require.NotNil(t, env.Total)
		assert.Equal(t, 9, *env.Total)
	})

	t.Run("paginated", func(t *testing.T) {
		w, env := do(t, r, "/api/products?limit=2&offset=3")
		require.Equal(t, http.StatusOK, w.Code)
		got := products(t, env)
		require.Len(t, got, 2)
		assert.Equal(t, 4, got[0].ID)
		assert.Equal(t, 3, *env.Offset)
		assert.Equal(t, 2, *env.Limit)
		assert.Equal(t, 9, *env.Total)
	})

	t.Run("category filter", func(t *testing.T) {
		_, env := do(t, r, "/api/products?category=Taiwanese")
		got := products(t, env)
		require.Len(t, got, 3)
		for _, p := range got {
			assert.Equal(t, domain.CategoryTaiwanese, p.Category)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		w, env := do(t, r, "/api/products?limit=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "INVALID_ARGUMENT", env.Code)
	})
}

func TestGetProduct(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"found", "/api/products/1", http.StatusOK, ""},
		{"not numeric", "/api/products/abc", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"zero", "/api/products/0", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"unknown", "/api/products/999", http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := do(t, r, tc.target)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, env.Code)
		})
	}

	_, env := do(t, r, "/api/products/1")
	var p map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "Persian Carpet", p["name"])
	assert.Equal(t, float64(500), p["price"])
}

func TestSuggestions(t *testing.T) {
	r := newRouter(t)

	_, env := do(t, r, "/api/products/4/suggestions")
	got := products(t, env)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.NotEqual(t, 4, p.ID)
		assert.Equal(t, domain.CategoryCaribbean, p.Category)
	}

	_, env = do(t, r, "/api/products/4/suggestions?limit=1")
	assert.Len(t, products(t, env), 1)

	w, env := do(t, r, "/api/products/404/suggestions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, 0, *env.Total)
}

func TestCategories(t *testing.T) {
	r := newRouter(t)

	_, env := do(t, r, "/api/categories")
	var names []string
	require.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Equal(t, []string{"Iran", "Caribbean", "Taiwanese"}, names)

	w, env := do(t, r, "/api/categories/Iran")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, products(t, env), 3)

	w, env = do(t, r, "/api/categories/iran")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "Iran, Caribbean, Taiwanese")

	w, _ = do(t, r, "/api/categories/Mars")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearch(t *testing.T) {
	r := newRouter(t)

	w, env := do(t, r, "/api/search?q=ceramic")
	require.Equal(t, http.StatusOK, w.Code)
	got := products(t, env)
	require.Len(t, got, 2)
	assert.Equal(t, []int{2, 7}, []int{got[0].ID, got[1].ID})
	assert.Equal(t, "ceramic", env.Query)

	_, env = do(t, r, "/api/search?q=zzz")
	assert.Empty(t, products(t, env))
	assert.Equal(t, 0, *env.Total)

	w, env = do(t, r, "/api/search?q=%20%20")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Search query is required", env.Error)
}
