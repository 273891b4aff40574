package middleware

import (
	"context"
	"net/http"
	"strings"

	"hr-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// SessionValidator memverifikasi token terhadap sesi yang tersimpan.
// Diimplementasikan oleh auth.Service; interface di sini agar middleware
// tidak perlu mengimpor paket auth.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (username, role, employeeID string, err error)
}

func Auth(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		username, role, employeeID, err := sessions.Validate(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Session is not valid", nil)
			c.Abort()
			return
		}

		c.Set("username", username)
		c.Set("role", role)
		c.Set("employee_id", employeeID)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if userRole == role {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
