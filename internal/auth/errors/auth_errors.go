package autherrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials dipakai seragam untuk semua jalur login yang
	// gagal; caller tidak boleh bisa membedakan username salah dari
	// password salah.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Session token is not valid",
		http.StatusUnauthorized,
	)
	ErrNoActiveSession = apperror.New(
		apperror.CodeUnauthorized,
		"No active session",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate session token",
		http.StatusInternalServerError,
	)
)
