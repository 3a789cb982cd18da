package httputil

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/darkkaiser/webapp-server/internal/service/api/constants"
	"github.com/darkkaiser/webapp-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// NewErrorHandler Echo 프레임워크의 전역 에러 핸들러를 생성합니다.
//
// 모든 에러를 가로채서 다음 형식으로 응답합니다.
//   - 404/405 (등록되지 않은 경로): {"error": "Route not found"}
//   - 그 외: {"error": {"message", "statusCode", "stack"}} (stack은 운영 환경이 아닐 때만 포함)
//
// 에러 발생 시 적절한 로그 레벨(Error/Warn)로 상세 정보를 기록하고,
// 5xx 에러는 요청의 Sentry Hub가 있으면 함께 보고합니다.
func NewErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		handleError(err, c, production)
	}
}

func handleError(err error, c echo.Context, production bool) {
	code := StatusCode(err)
	message := errorMessage(err, code, production)

	// 에러 로깅 (보안 및 디버깅 용도)
	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		// 5xx: 서버 내부 오류 - 즉시 조치 필요
		fields["stack"] = fmt.Sprintf("%+v", err)
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)

		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	} else if code >= http.StatusBadRequest {
		// 4xx: 클라이언트 요청 오류 - 정상적인 거부 응답
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지: 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	// 등록되지 않은 경로 (메서드 불일치 포함)는 HEAD 요청이더라도 404로 응답합니다.
	routeNotFound := (code == http.StatusNotFound && isRoutingError(err)) || code == http.StatusMethodNotAllowed
	if routeNotFound {
		code = http.StatusNotFound
	}

	// HEAD 요청 처리: HTTP 명세에 따라 헤더만 반환하고 본문은 생략
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	if routeNotFound {
		_ = c.JSON(http.StatusNotFound, response.RouteNotFoundResponse{Error: constants.ErrMsgRouteNotFound})
		return
	}

	detail := response.ErrorDetail{
		Message:    message,
		StatusCode: code,
	}
	if !production {
		detail.Stack = fmt.Sprintf("%+v", err)
	}

	_ = c.JSON(code, response.ErrorResponse{Error: detail})
}

// isRoutingError 라우터가 만든 404 에러(echo.ErrNotFound)인지 확인합니다.
func isRoutingError(err error) bool {
	return errors.Is(err, echo.ErrNotFound)
}

// errorMessage 클라이언트에게 전달할 에러 메시지를 결정합니다.
//
// 운영 환경에서는 500 에러의 내부 메시지를 노출하지 않습니다. (echo.HTTPError로 명시한 메시지는 예외)
func errorMessage(err error, code int, production bool) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch m := he.Message.(type) {
		case string:
			return m
		case response.ErrorDetail:
			return m.Message
		case error:
			return m.Error()
		}
		return http.StatusText(he.Code)
	}

	// 500은 분류되지 않은 내부 오류(패닉 포함)이므로 운영 환경에서는 내부 메시지를 노출하지 않습니다.
	if production && code == http.StatusInternalServerError {
		return constants.ErrMsgInternalServer
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return constants.ErrMsgInternalServer
}
