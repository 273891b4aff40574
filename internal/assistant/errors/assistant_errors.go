package assistanterrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	ErrProviderFailed = apperror.New(
		apperror.CodeUpstreamError,
		"AI provider request failed",
		http.StatusBadGateway,
	)
	ErrInvalidImageData = apperror.New(
		apperror.CodeInvalidInput,
		"Image payload is not valid base64 data",
		http.StatusBadRequest,
	)
	ErrVideoTimeout = apperror.New(
		apperror.CodeUpstreamError,
		"Video generation did not complete in time",
		http.StatusGatewayTimeout,
	)
)
