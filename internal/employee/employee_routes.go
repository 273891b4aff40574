package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.Auth(sessions))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RoleMiddleware("admin"),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RoleMiddleware("admin"),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RoleMiddleware("admin"),
			handler.Delete,
		)

		// Ownership dicek di handler: employee hanya untuk dirinya sendiri
		employees.PATCH("/:id/status",
			middleware.RateLimitByUser(1, 3),
			handler.UpdateStatus,
		)
	}
}
