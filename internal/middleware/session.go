package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "sid"
	sessionKey    = "session_id"
	sessionMaxAge = 24 * 60 * 60
)

type SessionOptions struct {
	// Cookies disabled means the session is keyed by client address.
	Cookies bool
	Secure  bool
}

// Session resolves the cart owner for the request. It issues a random id in an
// HttpOnly cookie when the client has none.
func Session(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !opts.Cookies {
			c.Set(sessionKey, "addr:"+c.ClientIP())
			c.Next()
			return
		}

		sid, err := c.Cookie(SessionCookie)
		if err != nil || !validSessionID(sid) {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", opts.Secure, true)
		}
		c.Set(sessionKey, sid)
		c.Next()
	}
}

func validSessionID(v string) bool {
	_, err := uuid.Parse(strings.TrimSpace(v))
	return err == nil
}

// SessionID returns the identifier attached by Session, falling back to the
// client address when the middleware did not run.
func SessionID(c *gin.Context) string {
	if v := c.GetString(sessionKey); v != "" {
		return v
	}
	return "addr:" + c.ClientIP()
}
