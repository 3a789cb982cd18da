package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// BodyLimit 요청 본문 크기를 limit(예: "10MiB")로 제한하는 미들웨어를 반환합니다.
//
// 한도를 넘으면 echo 기본 에러 대신 ErrBodyTooLarge(413)를 반환하여
// 다른 에러와 같은 응답 형식을 사용하도록 합니다.
func BodyLimit(limit string) echo.MiddlewareFunc {
	limiter := middleware.BodyLimit(limit)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := limiter(next)

		return func(c echo.Context) error {
			err := h(c)
			if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return ErrBodyTooLarge
			}
			return err
		}
	}
}
