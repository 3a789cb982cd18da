package httputil

import (
	"net/http"

	"github.com/darkkaiser/webapp-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewHTTPError 표준 ErrorDetail 메시지를 담은 echo.HTTPError를 생성합니다.
func NewHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorDetail{
		Message:    message,
		StatusCode: code,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewRequestEntityTooLargeError 413 Request Entity Too Large 에러를 생성합니다
func NewRequestEntityTooLargeError(message string) error {
	return NewHTTPError(http.StatusRequestEntityTooLarge, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return NewHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return NewHTTPError(http.StatusInternalServerError, message)
}
