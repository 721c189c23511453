package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/pantry-scheduler/internal/auth"
	"github.com/BruksfildServices01/pantry-scheduler/internal/httperr"
	"github.com/BruksfildServices01/pantry-scheduler/internal/session"
)

// Authenticate attaches the bearer token's principal to the request context.
// Requests without an Authorization header pass through anonymously; a
// malformed, expired or revoked token is rejected.
func Authenticate(issuer *auth.TokenIssuer, sessions session.Store, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "invalid authorization header")
			return
		}

		p, err := issuer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "invalid token")
			return
		}

		revoked, err := sessions.IsRevoked(c.Request.Context(), p.TokenID)
		if err != nil {
			log.WithError(err).Error("session store lookup failed")
			httperr.Internal(c, "internal_error", "internal server error")
			return
		}
		if revoked {
			httperr.Unauthorized(c, "token_revoked", "token revoked")
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

// RequireAuth rejects anonymous requests. It must run after Authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.PrincipalFrom(c.Request.Context()); !ok {
			httperr.Unauthorized(c, "unauthorized", "you need to sign in before continuing")
			return
		}
		c.Next()
	}
}
