package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/partykeep/partykeep/internal/api/response"
	"github.com/partykeep/partykeep/internal/auth"
)

// ContextUserID is the gin context key the verified user id is stored under.
const ContextUserID = "userID"

// JWTAuth gates protected routes. The token arrives as
// "Authorization: Bearer <token>" or, for older clients, in an "auth-token"
// header. No token at all is 401; a token that fails verification is a
// generic 403 — expired and malformed are deliberately indistinguishable.
func JWTAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			header = c.GetHeader("auth-token")
		}
		if header == "" {
			response.Denied(c, http.StatusUnauthorized, "Access Denied. No token provided.")
			c.Abort()
			return
		}

		tokenString := header
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = parts[1]
		}

		userID, err := issuer.VerifyAccess(tokenString)
		if err != nil {
			response.Error(c, http.StatusForbidden, "Invalid Token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
