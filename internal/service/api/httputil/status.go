package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/labstack/echo/v4"
)

// StatusCode 에러에 대응하는 HTTP 상태 코드를 반환합니다.
//
// *echo.HTTPError는 자신의 코드를, AppError는 ErrorType에 따른 코드를 사용하며
// 그 외의 에러는 모두 500으로 처리합니다.
func StatusCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Type() {
	case apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.Unauthorized:
		return http.StatusUnauthorized
	case apperrors.Forbidden:
		return http.StatusForbidden
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Conflict:
		return http.StatusConflict
	case apperrors.Timeout:
		return http.StatusGatewayTimeout
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
