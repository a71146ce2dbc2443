package middleware

import (
	"net/http"
	"strings"

	"Woorigil/pkg/context"
	"Woorigil/pkg/jwt"
	"Woorigil/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth requires a valid bearer token and stores the user id on the context.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and lets the
// request through either way. Public endpoints use it so they can still
// personalize for logged-in users.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, secret); ok {
			c.Set(context.CtxUserID, claims.UserID)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
