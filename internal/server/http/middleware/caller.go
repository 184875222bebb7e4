package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/printshop/internal/domain/model"
)

const (
	// CallerContextKey is a gin context key for the resolved caller.
	CallerContextKey = "caller"
	authCookieName   = "printshop_token"
)

// CallerResolver turns a bearer token into a caller assertion.
type CallerResolver interface {
	ResolveCaller(token string) (model.Caller, error)
}

// ResolveCaller stores the caller behind the request token in context.
// Missing or unparsable tokens yield an anonymous caller so that the
// operations themselves decide what an anonymous caller may do.
func ResolveCaller(resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := resolver.ResolveCaller(extractToken(c))
		if err != nil {
			caller = model.Caller{}
		}
		c.Set(CallerContextKey, caller)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}
