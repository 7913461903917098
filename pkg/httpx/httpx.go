package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	// Money goes out as JSON numbers with the exact decimal digits.
	decimal.MarshalJSONWithoutQuotes = true
}

// Envelope is the body of every JSON API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Offset  *int   `json:"offset,omitempty"`
	Limit   *int   `json:"limit,omitempty"`
	Query   string `json:"query,omitempty"`
}

type Option func(*Envelope)

func WithMessage(msg string) Option { return func(e *Envelope) { e.Message = msg } }

func WithTotal(n int) Option { return func(e *Envelope) { e.Total = &n } }

func WithPage(offset, limit int) Option {
	return func(e *Envelope) {
		e.Offset = &offset
		e.Limit = &limit
	}
}

func WithQuery(q string) Option { return func(e *Envelope) { e.Query = q } }

func OK(c *gin.Context, data any, opts ...Option) {
	Respond(c, http.StatusOK, data, opts...)
}

func Respond(c *gin.Context, status int, data any, opts ...Option) {
	env := Envelope{Success: true, Data: data}
	for _, opt := range opts {
		opt(&env)
	}
	c.JSON(status, env)
}

func Error(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: msg, Code: code})
}
