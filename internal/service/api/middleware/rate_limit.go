package middleware

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/darkkaiser/webapp-server/internal/service/api/constants"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 서버가 메모리에 유지할 수 있는 최대 고유 IP 주소(Rate Limiter 인스턴스)의 수입니다.
	// 임계값에 도달하면 Go Map의 무작위 순회 특성을 이용해 기존 항목 하나를 축출합니다.
	maxIPRateLimiters = 10000
)

// ipRateLimiter IP 주소별 Rate Limiter를 관리하는 구조체입니다.
//
// Token Bucket 알고리즘을 사용하여 IP별로 독립적인 요청 제한을 적용합니다.
// 버킷 크기는 구간당 최대 요청 수이며, 구간(window) 동안 버킷 전체가 다시 채워지는 속도로 토큰이 보충됩니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter

	window      time.Duration
	maxRequests int
	rate        rate.Limit
}

func newIPRateLimiter(window time.Duration, maxRequests int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters:    make(map[string]*rate.Limiter),
		window:      window,
		maxRequests: maxRequests,
		rate:        rate.Every(window / time.Duration(maxRequests)),
	}
}

// getLimiter 특정 IP의 Rate Limiter를 반환합니다. 없으면 새로 생성합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double-check: 다른 고루틴이 이미 생성했을 수 있음
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		for oldIP := range i.limiters {
			delete(i.limiters, oldIP)
			break
		}
	}

	limiter = rate.NewLimiter(i.rate, i.maxRequests)
	i.limiters[ip] = limiter

	return limiter
}

// quota 요청 처리 직후의 남은 요청 수와 버킷이 가득 찰 때까지 남은 시간(초)을 계산합니다.
func (i *ipRateLimiter) quota(limiter *rate.Limiter, now time.Time) (remaining int, resetSeconds int) {
	tokens := limiter.TokensAt(now)
	if tokens < 0 {
		tokens = 0
	}

	missing := float64(i.maxRequests) - tokens
	resetSeconds = int(math.Ceil(missing / float64(i.rate)))

	return int(math.Floor(tokens)), resetSeconds
}

// retryAfterSeconds 다음 요청 1건이 허용될 때까지 기다려야 하는 시간(초, 최소 1초)을 계산합니다.
func (i *ipRateLimiter) retryAfterSeconds(limiter *rate.Limiter, now time.Time) int {
	deficit := 1 - limiter.TokensAt(now)
	seconds := int(math.Ceil(deficit / float64(i.rate)))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

// RateLimiting IP 기반 Rate Limiting 미들웨어를 반환합니다.
//
// window 동안 IP별로 최대 maxRequests개의 요청을 허용합니다.
// 모든 응답에 RateLimit-Limit, RateLimit-Remaining, RateLimit-Reset 헤더를 설정하며,
// 제한 초과 시 Retry-After 헤더와 함께 HTTP 429를 반환합니다.
//
// 사용 예시:
//
//	e.Use(middleware.RateLimiting(15*time.Minute, 100)) // 15분당 100 요청
//
// 주의사항:
//   - 메모리 기반 저장소 (서버 재시작 시 초기화)
//   - 다중 서버 환경에서는 서버별로 독립적인 제한 적용
//
// Panics:
//   - window 또는 maxRequests가 0 이하인 경우
func RateLimiting(window time.Duration, maxRequests int) echo.MiddlewareFunc {
	if window <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitWindowInvalid, window))
	}
	if maxRequests <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitMaxRequestsInvalid, maxRequests))
	}

	limiter := newIPRateLimiter(window, maxRequests)
	limit := strconv.Itoa(maxRequests)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			ipLimiter := limiter.getLimiter(ip)

			now := time.Now()
			allowed := ipLimiter.AllowN(now, 1)
			remaining, reset := limiter.quota(ipLimiter, now)

			h := c.Response().Header()
			h.Set(constants.HeaderRateLimitLimit, limit)
			h.Set(constants.HeaderRateLimitRemaining, strconv.Itoa(remaining))
			h.Set(constants.HeaderRateLimitReset, strconv.Itoa(reset))

			if !allowed {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				h.Set(constants.HeaderRetryAfter, strconv.Itoa(limiter.retryAfterSeconds(ipLimiter, now)))

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
