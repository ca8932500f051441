package auth

import (
	"context"
	"net/http"

	dom "sgc/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SessionCookieName carries the session token.
const SessionCookieName = "session_id"

const contextKeyIdentity = "identity"

// IdentityResolver resolves a session token to an identity.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context, token string) (dom.Identity, bool, error)
}

// IdentityFromContext returns the identity set by RequireSession.
func IdentityFromContext(c *gin.Context) (dom.Identity, bool) {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return dom.Identity{}, false
	}
	id, ok := v.(dom.Identity)
	return id, ok
}

// RequireSession returns a middleware that checks for a valid session cookie
// and sets the current identity in context. If missing or invalid, responds with 401.
func RequireSession(r IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			abortUnauthenticated(c)
			return
		}
		id, ok, err := r.CurrentIdentity(c.Request.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "ErrorInterno"})
			return
		}
		if !ok {
			abortUnauthenticated(c)
			return
		}
		c.Set(contextKeyIdentity, id)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": "NoAutenticado",
		"login":   "/api/v1/auth/login",
	})
}
