package api

import (
	"net/http"

	"github.com/darkkaiser/webapp-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
// 이 함수는 다음과 같은 엔드포인트들을 설정합니다:
//   - API 루트: 환영 메시지 (/api)
//   - 시스템 엔드포인트: 헬스체크(/api/health), 준비 상태(/api/health/ready), 버전 정보(/api/version)
//   - 메트릭: Prometheus 수집 엔드포인트 (/metrics)
//   - API 문서: Swagger UI (/swagger/*)
//
// 그 외의 모든 경로는 중앙 에러 핸들러에서 404 {"error":"Route not found"}로 응답합니다.
func RegisterRoutes(e *echo.Echo, h *system.Handler, gatherer prometheus.Gatherer) {
	registerSystemRoutes(e, h)
	registerMetricsRoutes(e, gatherer)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	// GET 라우트는 HEAD 요청에도 응답합니다. (본문은 net/http가 생략)
	methods := []string{http.MethodGet, http.MethodHead}

	// echo 라우터는 후행 슬래시를 구분하므로 두 형태를 모두 등록합니다.
	e.Match(methods, "/api", h.WelcomeHandler)
	e.Match(methods, "/api/", h.WelcomeHandler)

	g := e.Group("/api")
	g.Match(methods, "/health", h.HealthCheckHandler)
	g.Match(methods, "/health/", h.HealthCheckHandler)
	g.Match(methods, "/health/ready", h.ReadinessHandler)
	g.Match(methods, "/version", h.VersionHandler)
}

func registerMetricsRoutes(e *echo.Echo, gatherer prometheus.Gatherer) {
	if gatherer == nil {
		return
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		// Swagger 문서 JSON 파일 위치 지정
		echoSwagger.URL("/swagger/doc.json"),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그(Tag) 목록만 펼침 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
