package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/christejab07/Parking/internal/domain"
)

const (
	UserIDKey   = "userID"
	UserRoleKey = "userRole"

	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer"
)

// TokenParser resolves a bearer credential to (userID, role).
type TokenParser interface {
	ParseToken(token string) (int64, domain.Role, error)
}

// Auth authenticates the request and stores the caller's identity in the
// request context. Missing or invalid credentials end the request with 401.
func Auth(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing authorization header"})
			return
		}

		fields := strings.Fields(header)
		if len(fields) != 2 || !strings.EqualFold(fields[0], bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid authorization header"})
			return
		}

		userID, role, err := tokens.ParseToken(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserRoleKey, role)

		c.Next()
	}
}

// RequireRole rejects callers whose resolved role does not match.
// Must run after Auth.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		v, ok := c.Get(UserRoleKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}

		if callerRole, isRole := v.(domain.Role); !isRole || callerRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
