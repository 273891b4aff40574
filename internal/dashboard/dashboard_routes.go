package dashboard

import (
	"hr-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	sessions middleware.SessionValidator,
	logger *zap.Logger,
) {
	dash := r.Group("/dashboard")
	dash.Use(middleware.Auth(sessions))
	dash.Use(middleware.ContextLogger(logger))
	{
		dash.GET("/stats",
			middleware.RateLimitByUser(3, 10),
			middleware.RoleMiddleware("admin"),
			handler.Stats,
		)
	}
}
