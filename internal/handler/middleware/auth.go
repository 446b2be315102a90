package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"arttoy-storefront/internal/domain/user"
	"arttoy-storefront/internal/pkg/cookie"
	"arttoy-storefront/internal/pkg/errs"
	"arttoy-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates requests on the backend-issued bearer credential.
// Which routes carry which gate lives in the router; the admission and
// deletion logic below the handlers only assumes an unauthenticated request
// never reaches them.
type AuthMiddleware struct {
	sessionGate usecase.SessionGate
}

const (
	ctxTokenKey    = "access_token"
	ctxUserRoleKey = "user_role"
)

var roleHierarchy = map[user.Role]int{
	user.RoleGuest:  1,
	user.RoleMember: 2,
	user.RoleAdmin:  3,
}

func NewAuthMiddleware(sessionGate usecase.SessionGate) *AuthMiddleware {
	return &AuthMiddleware{
		sessionGate: sessionGate,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		role, err := m.sessionGate.Resolve(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Session resolution failed in auth middleware", "error", err.Error())
			if errs.Is(err, usecase.ErrUnauthenticated) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid or expired token",
				})
			} else {
				c.JSON(http.StatusBadGateway, gin.H{
					"error": "Session service is unavailable",
				})
			}
			c.Abort()
			return
		}

		c.Set(ctxTokenKey, token)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func extractToken(c *gin.Context) string {
	token := cookie.GetAccessToken(c)
	if token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetToken returns the bearer credential the request authenticated with.
func GetToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxTokenKey)
	if !exists {
		return "", false
	}

	token, ok := v.(string)
	return token, ok
}

// GetUserRole returns the authenticated user role from context
func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(user.Role)
	return role, ok
}
