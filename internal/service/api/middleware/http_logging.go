package middleware

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/webapp-server/internal/service/api/constants"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/darkkaiser/webapp-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

const (
	// defaultBytesIn Content-Length 헤더가 없는 경우(Chunked Transfer Encoding 등) bytes_in 필드에 기록될 기본값입니다.
	defaultBytesIn = "0"
)

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, 경로, 라우트, URI, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 성능: 처리 시간 (마이크로초 및 사람이 읽기 쉬운 형식)
//   - 보안: 민감한 쿼리 파라미터 자동 마스킹 (password, token 등)
//
// 로그 레벨은 응답 상태 코드에 따라 결정됩니다. (5xx: Error, 4xx: Warn, 그 외: Info)
// 핸들러가 반환한 에러는 이 미들웨어에서 에러 핸들러로 전달되어 최종 상태 코드가 기록됩니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return httpLoggerHandler(c, next)
		}
	}
}

func httpLoggerHandler(c echo.Context, next echo.HandlerFunc) error {
	req := c.Request()
	res := c.Response()
	start := time.Now()

	// defer를 사용하여 패닉 발생 시에도 로그가 기록되도록 보장
	defer func() {
		latency := time.Since(start)

		path := req.URL.Path
		if path == "" {
			path = "/"
		}

		bytesIn := req.Header.Get(echo.HeaderContentLength)
		if bytesIn == "" {
			bytesIn = defaultBytesIn
		}

		entry := applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
			"method":   req.Method,
			"path":     path,
			"route":    c.Path(),
			"uri":      maskSensitiveQueryParams(req.RequestURI),
			"host":     req.Host,
			"protocol": req.Proto,

			"remote_ip":  c.RealIP(),
			"user_agent": req.UserAgent(),
			"referer":    req.Referer(),

			"status":    res.Status,
			"bytes_in":  bytesIn,
			"bytes_out": strconv.FormatInt(res.Size, 10),

			"latency":       strconv.FormatInt(latency.Microseconds(), 10),
			"latency_human": latency.String(),

			"request_id": res.Header().Get(echo.HeaderXRequestID),
		})

		switch {
		case res.Status >= http.StatusInternalServerError:
			entry.Error(constants.LogMsgHTTPRequest)
		case res.Status >= http.StatusBadRequest:
			entry.Warn(constants.LogMsgHTTPRequest)
		default:
			entry.Info(constants.LogMsgHTTPRequest)
		}
	}()

	if err := next(c); err != nil {
		c.Error(err)
	}

	return nil
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// URI 파싱 실패 시 원본을 반환하여 로깅이 중단되지 않도록 합니다.
//
//	입력: "/api/health?token=secret123456789&id=100"
//	출력: "/api/health?id=100&token=secr%2A%2A%2A6789"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}

	if masked {
		u.RawQuery = q.Encode()
		return u.String()
	}

	return uri
}
