package auth

import (
	"net/http"
	"os"

	"hr-admin/internal/shared/apperror"
	"hr-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	sess, err := ctrl.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Pesan seragam apa pun penyebabnya
		response.Error(c, http.StatusUnauthorized, "AUTH_FAILED", "Invalid credentials", nil)
		return
	}

	ctrl.setSessionCookie(c, sess.Token)
	response.Success(c, http.StatusOK, mapToSessionResponse(sess), nil)
}

func (ctrl *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	sess, err := ctrl.service.Register(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	ctrl.setSessionCookie(c, sess.Token)
	response.Success(c, http.StatusCreated, mapToSessionResponse(sess), nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	if err := ctrl.service.Logout(c.Request.Context()); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	sess, err := ctrl.service.CurrentSession(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "No active session", nil)
		return
	}

	response.Success(c, http.StatusOK, mapToSessionResponse(*sess), nil)
}

func (ctrl *Handler) setSessionCookie(c *gin.Context, token string) {
	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   86400, // 1 hari, selaras dengan TTL token
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})
}

func mapToSessionResponse(sess Session) SessionResponse {
	return SessionResponse{
		Username:   sess.Username,
		Role:       sess.Role,
		Token:      sess.Token,
		EmployeeID: sess.EmployeeID,
	}
}
