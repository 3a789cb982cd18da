// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// API 루트, 헬스체크(liveness), 준비 상태(readiness), 버전 정보 등 인증이 필요 없는
// 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/webapp-server/internal/health"
	"github.com/darkkaiser/webapp-server/internal/pkg/version"
	"github.com/darkkaiser/webapp-server/internal/service/api/constants"
	"github.com/darkkaiser/webapp-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	reporter *health.Reporter

	buildInfo version.Info

	now func() time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(reporter *health.Reporter, buildInfo version.Info) *Handler {
	if reporter == nil {
		panic(constants.PanicMsgHealthReporterRequired)
	}

	return &Handler{
		reporter: reporter,

		buildInfo: buildInfo,

		now: time.Now,
	}
}

// WelcomeHandler godoc
// @Summary API 루트
// @Description API 서버의 환영 메시지와 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.WelcomeResponse "환영 메시지"
// @Router /api [get]
func (h *Handler) WelcomeHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.WelcomeResponse{
		Message:   constants.MsgWelcome,
		Version:   constants.APIVersion,
		Timestamp: health.FormatTimestamp(h.now()),
	})
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크 (liveness)
// @Description 프로세스 가동 시간, 메모리 사용량, 데이터베이스 연결 상태를 반환합니다.
// @Description 데이터베이스가 연결되지 않은 경우에도 항상 200을 반환합니다.
// @Description
// @Description database.readyState: 0=disconnected, 1=connected, 2=connecting, 3=disconnecting
// @Tags System
// @Produce json
// @Success 200 {object} health.Report "헬스체크 결과"
// @Router /api/health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, h.reporter.Health())
}

// ReadinessHandler godoc
// @Summary 서버 준비 상태 (readiness)
// @Description 데이터베이스가 연결되어 있으면 200, 아니면 503을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} health.ReadinessReport "준비됨"
// @Failure 503 {object} health.ReadinessReport "준비되지 않음"
// @Router /api/health/ready [get]
func (h *Handler) ReadinessHandler(c echo.Context) error {
	report := h.reporter.Readiness()

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/api/health/ready",
		"remote_ip": c.RealIP(),
		"status":    report.Status,
	}).Debug(constants.LogMsgReadinessCheck)

	if !report.Ready() {
		return c.JSON(http.StatusServiceUnavailable, report)
	}

	return c.JSON(http.StatusOK, report)
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /api/version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		GoVersion: h.buildInfo.GoVersion,
	})
}
