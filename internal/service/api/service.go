package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/webapp-server/docs"
	"github.com/darkkaiser/webapp-server/internal/config"
	"github.com/darkkaiser/webapp-server/internal/health"
	"github.com/darkkaiser/webapp-server/internal/pkg/version"
	"github.com/darkkaiser/webapp-server/internal/service"
	"github.com/darkkaiser/webapp-server/internal/service/api/constants"
	"github.com/darkkaiser/webapp-server/internal/service/api/handler/system"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Service 웹 애플리케이션 API 서버의 생명주기를 관리하는 서비스입니다.
//
// 이 서비스는 다음과 같은 역할을 수행합니다:
//   - Echo 기반 HTTP 서버 시작 및 종료
//   - 미들웨어 체인 설정 (PanicRecovery, RequestID, Sentry, SecurityHeaders, HTTPLogger, Metrics, RateLimiting, CORS)
//   - API 엔드포인트 라우팅 설정 (/api, /api/health, /api/health/ready, /api/version, /metrics)
//   - Swagger UI 제공
//   - 중앙 HTTP 에러 핸들러 설정
//   - Graceful Shutdown 지원 (5초 타임아웃)
//
// 서비스는 고루틴으로 실행되며, context를 통해 종료 신호를 받습니다.
// Start() 메서드로 시작하고, context 취소로 종료됩니다.
type Service struct {
	appConfig *config.AppConfig

	reporter *health.Reporter
	registry *prometheus.Registry

	buildInfo version.Info

	// failed HTTP 서버가 종료 신호 없이 비정상 종료된 경우 그 원인을 전달합니다. (포트 바인딩 실패 등)
	failed chan error

	running   bool
	runningMu sync.Mutex
}

var _ service.Service = (*Service)(nil)

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, reporter *health.Reporter, registry *prometheus.Registry, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if reporter == nil {
		panic(constants.PanicMsgHealthReporterRequired)
	}
	if registry == nil {
		panic(constants.PanicMsgMetricsRegistryRequired)
	}

	return &Service{
		appConfig: appConfig,

		reporter: reporter,
		registry: registry,

		buildInfo: buildInfo,

		failed: make(chan error, 1),

		running:   false,
		runningMu: sync.Mutex{},
	}
}

// Start API 서비스를 시작합니다.
//
// 서비스는 별도의 고루틴에서 실행되며, 다음 작업을 수행합니다:
//  1. 중복 실행 방지
//  2. Echo 서버 설정 (Handler, 미들웨어, 라우트)
//  3. HTTP 서버 시작 (별도 고루틴)
//  4. Shutdown 신호 대기
//  5. Graceful Shutdown 처리 (5초 타임아웃)
//
// Note: 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// Failed HTTP 서버가 예기치 않게 종료되었을 때 원인 에러를 전달하는 채널을 반환합니다.
// 정상적인 Graceful Shutdown에서는 값이 전달되지 않습니다.
func (s *Service) Failed() <-chan error {
	return s.failed
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.New(s.reporter, s.buildInfo)

	e := NewHTTPServer(HTTPServerConfig{
		Production:      s.appConfig.IsProduction(),
		AllowOrigins:    s.appConfig.CORS.AllowOrigins,
		Registry:        s.registry,
		EnableSentry:    s.appConfig.Sentry.Enabled(),
		RateLimitWindow: s.appConfig.RateLimit.Window(),
		RateLimitMax:    s.appConfig.RateLimit.MaxRequests,
	})

	RegisterRoutes(e, systemHandler, s.registry)

	return e
}

// startHTTPServer HTTP 서버를 시작합니다. 서버가 종료되면 done 채널을 닫습니다.
//
// 포트 바인딩을 먼저 수행하고, 바인딩에 성공한 경우에만 서버 실행 로그를 남깁니다.
//
// Note: 이 함수는 블로킹되며, 서버가 종료될 때까지 반환되지 않습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.Port
	address := fmt.Sprintf(":%d", port)

	l, err := net.Listen("tcp", address)
	if err != nil {
		s.handleServerError(err)
		return
	}
	e.Listener = l

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
		"env":  s.appConfig.Env,
	}).Infof(constants.LogMsgServerRunning, port, s.appConfig.Env)

	s.handleServerError(e.Start(address))
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
//
// 에러 처리 방식:
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Info 레벨 로깅 (Graceful Shutdown)
//   - 그 외: Error 레벨 로깅 + Sentry 보고 + Failed 채널로 전달
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.Port,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)

	sentry.CaptureException(err)

	select {
	case s.failed <- err:
	default:
	}
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
//
// Note: 이 함수는 서비스가 완전히 종료될 때까지 블로킹됩니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// HTTP 서버가 예기치 않게 종료됨 (포트 바인딩 실패 등)
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
