package assistant

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
	assistant := r.Group("/assistant")
	assistant.Use(middleware.Auth(sessions))
	assistant.Use(middleware.ContextLogger(logger))
	assistant.Use(middleware.RoleMiddleware("admin"))
	{
		// Panggilan provider mahal, limit lebih ketat dari CRUD
		assistant.POST("/reviews/:id",
			middleware.RateLimitByUser(0.2, 2),
			handler.GenerateReview,
		)

		assistant.POST("/insights",
			middleware.RateLimitByUser(0.2, 2),
			handler.DepartmentInsight,
		)

		assistant.POST("/images",
			middleware.RateLimitByUser(0.2, 2),
			handler.CreateImage,
		)

		assistant.POST("/images/edits",
			middleware.RateLimitByUser(0.2, 2),
			handler.EditImage,
		)

		assistant.POST("/images/analyses",
			middleware.RateLimitByUser(0.2, 2),
			handler.AnalyzeImage,
		)

		assistant.POST("/videos",
			middleware.RateLimitByUser(0.1, 1),
			handler.CreateVideo,
		)
	}
}
