package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "token"

	ctxPhone  = "user_phone"
	ctxUserID = "user_id"
)

// AuthMiddleware accepts the session cookie or a Bearer token and stores the
// verified phone in the context. Handlers never read identity from the body.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			tokenString = bearerToken(c.GetHeader("Authorization"))
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case errors.Is(err, ErrInvalidTokenType):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token type"})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set(ctxPhone, claims.Phone)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AdminMiddleware gates admin routes behind the shared secret "admin:<password>".
// The credential is accepted raw after the scheme, as the admin console sends
// it, or base64-encoded as standard Basic auth.
func AdminMiddleware(password string) gin.HandlerFunc {
	expected := []byte("admin:" + password)

	return func(c *gin.Context) {
		if password == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		parts := strings.Split(c.GetHeader("Authorization"), " ")
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		credential := []byte(parts[1])
		if strings.EqualFold(parts[0], "Basic") {
			if decoded, err := base64.StdEncoding.DecodeString(parts[1]); err == nil {
				if subtle.ConstantTimeCompare(decoded, expected) == 1 {
					c.Next()
					return
				}
			}
		}

		if subtle.ConstantTimeCompare(credential, expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

func GetPhone(c *gin.Context) (string, bool) {
	phone, exists := c.Get(ctxPhone)
	if !exists {
		return "", false
	}

	p, ok := phone.(string)
	if !ok || p == "" {
		return "", false
	}

	return p, true
}

// SetUserID records the resolved account id for the verified phone.
func SetUserID(c *gin.Context, id int) {
	c.Set(ctxUserID, id)
}

func GetUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	if !ok {
		return 0, false
	}

	return id, true
}
