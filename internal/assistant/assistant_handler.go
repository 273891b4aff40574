package assistant

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
	"hr-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("assistant.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("assistant request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return false
	}
	return true
}

func (h *Handler) GenerateReview(c *gin.Context) {
	employeeID := c.Param("id")
	h.logger.Debug("http generate review", zap.String("employee_id", employeeID))

	text, err := h.service.GenerateReview(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, TextResponse{Text: text}, nil)
}

func (h *Handler) DepartmentInsight(c *gin.Context) {
	var req InsightRequest
	if !h.bindJSON(c, &req) {
		return
	}

	text, err := h.service.DepartmentInsight(c.Request.Context(), req.Department)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, TextResponse{Text: text}, nil)
}

func (h *Handler) CreateImage(c *gin.Context) {
	var req CreateImageRequest
	if !h.bindJSON(c, &req) {
		return
	}

	image, err := h.service.CreateImage(c.Request.Context(), req.Prompt, req.Size, req.AspectRatio)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ImageResponse{Image: image}, nil)
}

func (h *Handler) EditImage(c *gin.Context) {
	var req EditImageRequest
	if !h.bindJSON(c, &req) {
		return
	}

	image, err := h.service.EditImage(c.Request.Context(), req.Image, req.Prompt)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ImageResponse{Image: image}, nil)
}

func (h *Handler) AnalyzeImage(c *gin.Context) {
	var req AnalyzeImageRequest
	if !h.bindJSON(c, &req) {
		return
	}

	text, err := h.service.AnalyzeImage(c.Request.Context(), req.Image, req.Question)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, TextResponse{Text: text}, nil)
}

func (h *Handler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if !h.bindJSON(c, &req) {
		return
	}

	uri, err := h.service.CreateVideo(c.Request.Context(), req.Prompt, req.AspectRatio, req.ReferenceImage)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, VideoResponse{URI: uri}, nil)
}
