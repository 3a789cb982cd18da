package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute 등록되지 않은 경로에 대한 route 라벨 값 (라벨 카디널리티 폭증 방지)
const unmatchedRoute = "unmatched"

// Metrics HTTP 요청 수와 처리 시간을 Prometheus 메트릭으로 수집하는 미들웨어를 반환합니다.
//
// 수집 메트릭 (namespace 접두사 포함):
//   - http_requests_total{method, route, status}
//   - http_request_duration_seconds{method, route}
func Metrics(namespace string, reg prometheus.Registerer) echo.MiddlewareFunc {
	factory := promauto.With(reg)

	requests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})

	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			route := c.Path()

			err := next(c)
			if err != nil {
				if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
					route = unmatchedRoute
				}

				// 상태 코드를 확정하기 위해 에러 핸들러를 먼저 실행합니다.
				c.Error(err)
			}
			if route == "" {
				route = unmatchedRoute
			}

			method := c.Request().Method
			requests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
