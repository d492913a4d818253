package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxAdminID    = "admin_id"
	ctxAdminLogin = "admin_login"
)

// AuthMiddleware rejects requests without a valid access token: 401 when the
// token is missing, 403 when it does not verify.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token expired"})
			default:
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			}
			return
		}

		if claims.TokenType != tokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access token required"})
			return
		}

		c.Set(ctxAdminID, claims.AdminID)
		c.Set(ctxAdminLogin, claims.Login)
		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))

		c.Next()
	}
}

func GetAdminID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxAdminID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func GetAdminLogin(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminLogin)
	if !exists {
		return "", false
	}
	login, ok := v.(string)
	return login, ok
}
