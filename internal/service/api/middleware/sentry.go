package middleware

import (
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// sentryFlushTimeout 요청 처리 중 이벤트 전송을 기다리는 최대 시간
const sentryFlushTimeout = 2 * time.Second

// Sentry 요청마다 Sentry Hub를 구성하는 미들웨어를 반환합니다.
//
// 패닉은 Sentry에 보고된 뒤 다시 발생하여 PanicRecovery가 처리하며,
// 요청 ID는 이벤트 태그(request_id)로 기록됩니다.
// 전역 Sentry 클라이언트가 초기화되어 있어야 이벤트가 실제로 전송됩니다.
func Sentry() echo.MiddlewareFunc {
	hubMiddleware := sentryecho.New(sentryecho.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         sentryFlushTimeout,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return hubMiddleware(func(c echo.Context) error {
			if hub := sentryecho.GetHubFromContext(c); hub != nil {
				hub.ConfigureScope(func(scope *sentry.Scope) {
					if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
						scope.SetTag("request_id", requestID)
					}
					scope.SetUser(sentry.User{IPAddress: c.RealIP()})
				})
			}
			return next(c)
		})
	}
}
