package auth

import (
	"hr-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions middleware.SessionValidator) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		authGroup.POST("/register", middleware.RateLimitByIP(0.5, 2), handler.Register)

		authGroup.POST("/logout", middleware.Auth(sessions), handler.Logout)
		authGroup.GET("/me", middleware.Auth(sessions), handler.Me)
	}
}
