package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/webapp-server/internal/service/api/constants"
	"github.com/darkkaiser/webapp-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/webapp-server/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Production 운영 환경 여부
	// 운영 환경에서는 에러 응답에 스택 트레이스를 포함하지 않으며, 분류되지 않은 5xx 에러의 메시지를 숨깁니다.
	Production bool

	// AllowOrigins CORS에서 허용할 Origin 목록 (FRONTEND_URL)
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 60초)
	RequestTimeout time.Duration

	// Registry HTTP 메트릭을 등록할 Prometheus Registry (nil이면 메트릭 미들웨어를 적용하지 않음)
	Registry prometheus.Registerer

	// EnableSentry 요청별 Sentry Hub 구성 여부
	EnableSentry bool

	// RateLimitWindow, RateLimitMax IP별 요청 제한 (RateLimitWindow 동안 최대 RateLimitMax개)
	// 0이면 속도 제한을 적용하지 않습니다.
	RateLimitWindow time.Duration
	RateLimitMax    int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다 (순서가 중요합니다):
//
//  1. PanicRecovery - 패닉 복구 및 로깅
//     - 가장 먼저 적용되어야 다른 미들웨어의 panic도 복구 가능
//
//  2. RequestID - 요청 ID 생성 (X-Request-ID 헤더, UUID)
//     - 로깅/Sentry보다 먼저 적용되어야 request_id를 기록할 수 있음
//
//  3. Sentry - 요청별 Sentry Hub 구성 (SENTRY_DSN 설정 시)
//
//  4. ServerHeader - Server 헤더 제거
//
//  5. SecurityHeaders - 보안 헤더 설정 (CSP, X-Frame-Options 등)
//     - 핸들러 실행 전에 헤더를 설정하므로 404, 429 등 에러 응답에도 적용됨
//     - Swagger UI(/swagger/)는 인라인 스크립트를 사용하므로 CSP에서 제외
//
//  6. HTTPLogger - HTTP 요청/응답 로깅 (민감 정보 마스킹)
//     - RateLimit/Timeout 이전에 위치하여 429/503 에러도 기록
//
//  7. Metrics - 요청 수, 처리 시간 Prometheus 메트릭
//
//  8. RateLimiting - IP 기반 요청 제한 (기본: 15분당 100회, 초과 시 429 응답)
//
//  9. BodyLimit - 요청 본문 크기 제한 (10MiB, 초과 시 413 응답)
//
//  10. ContextTimeout - 요청 Context에 데드라인 설정 (기본: 60초, 초과 시 503 응답)
//
//  11. CORS - 허용된 Origin의 크로스 도메인 요청 처리 (자격 증명 포함)
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = !cfg.Production
	e.HideBanner = true
	e.HidePort = true

	// 보안 및 리소스 관리를 위한 HTTP 서버 타임아웃 설정
	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.NewLogger()

	// 전역 HTTP 에러 핸들러 설정
	e.HTTPErrorHandler = httputil.NewErrorHandler(cfg.Production)

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(appmiddleware.RequestID())
	// 3. Sentry
	if cfg.EnableSentry {
		e.Use(appmiddleware.Sentry())
	}
	// 4. Server 헤더 제거
	e.Use(appmiddleware.RemoveServerHeader())
	// 5. 보안 헤더
	e.Use(appmiddleware.SecurityHeaders(appmiddleware.SecurityHeadersConfig{
		CSPExemptPrefixes: []string{"/swagger/"},
	}))
	// 6. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 7. 메트릭
	if cfg.Registry != nil {
		e.Use(appmiddleware.Metrics(constants.MetricsNamespace, cfg.Registry))
	}
	// 8. Rate Limiting
	if cfg.RateLimitWindow > 0 && cfg.RateLimitMax > 0 {
		e.Use(appmiddleware.RateLimiting(cfg.RateLimitWindow, cfg.RateLimitMax))
	}
	// 9. Body Limit (최대 10MB)
	e.Use(appmiddleware.BodyLimit(constants.DefaultMaxBodySize))
	// 10. Timeout
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	// 11. CORS 설정
	// 와일드카드(*)와 자격 증명(credentials)은 함께 사용할 수 없으므로 특정 Origin 목록일 때만 허용합니다.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowOrigins),
	}))

	return e
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
