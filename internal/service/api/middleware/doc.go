// Package middleware Echo 프레임워크를 위한 HTTP 미들웨어를 제공합니다.
//
// 제공되는 미들웨어:
//
//   - PanicRecovery: 패닉 복구 및 에러 로깅
//   - RequestID: UUID 기반 요청 ID 부여
//   - Sentry: 요청별 Sentry Hub 구성 (에러 추적 활성화 시)
//   - RemoveServerHeader: Server 헤더 제거
//   - SecurityHeaders: 기본 보안 헤더(CSP, HSTS, X-Frame-Options 등) 설정
//   - HTTPLogger: HTTP 요청/응답 로깅 (민감 정보 자동 마스킹)
//   - Metrics: Prometheus 요청 수/지연 시간 수집
//   - RateLimiting: IP 기반 요청 속도 제한 (RateLimit-* 헤더)
//   - BodyLimit: 요청 본문 크기 제한 (초과 시 413)
//   - Logger: Echo 로거를 애플리케이션 로거로 연결
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.RequestID())
//	e.Use(middleware.SecurityHeaders(middleware.SecurityHeadersConfig{}))
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimiting(15*time.Minute, 100))
package middleware
