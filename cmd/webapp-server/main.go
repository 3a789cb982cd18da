package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/webapp-server/internal/config"
	"github.com/darkkaiser/webapp-server/internal/database"
	"github.com/darkkaiser/webapp-server/internal/health"
	"github.com/darkkaiser/webapp-server/internal/pkg/version"
	"github.com/darkkaiser/webapp-server/internal/service"
	"github.com/darkkaiser/webapp-server/internal/service/api"
	"github.com/darkkaiser/webapp-server/internal/service/api/constants"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/darkkaiser/webapp-server/pkg/sentryx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Webapp Server API
// @version 1.0.0
// @description 웹 애플리케이션 백엔드의 상태 확인용 REST API입니다.
// @description
// @description ## 엔드포인트
// @description - GET /api: API 환영 메시지와 버전
// @description - GET /api/health: 프로세스 상태 (항상 200, 로드밸런서 liveness 용도)
// @description - GET /api/health/ready: 데이터베이스 연결 여부에 따른 준비 상태 (200 또는 503)
// @description
// @description 모든 응답에는 보안 헤더가 포함되며, IP별 요청 속도 제한이 적용됩니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const (
	banner = `
 __        __     _                            ____
 \ \      / /___ | |__    __ _  _ __   _ __   / ___|   ___  _ __ __   __  ___  _ __
  \ \ /\ / // _ \| '_ \  / _' || '_ \ | '_ \  \___ \  / _ \| '__|\ \ / / / _ \| '__|
   \ V  V /|  __/| |_) || (_| || |_) || |_) |  ___) ||  __/| |    \ V / |  __/| |
    \_/\_/  \___||_.__/  \__,_|| .__/ | .__/  |____/  \___||_|     \_/   \___||_|
                               |_|    |_|                                   %s
                                                           developed by DarkKaiser
------------------------------------------------------------------------------------
`

	// dbCloseTimeout 종료 시 MongoDB 연결 해제를 기다리는 최대 시간
	dbCloseTimeout = 10 * time.Second

	// sentryFlushTimeout 종료 시 전송 대기 중인 에러 이벤트를 기다리는 최대 시간
	sentryFlushTimeout = 2 * time.Second
)

func main() {
	os.Exit(run())
}

// run 서버를 구동하고 종료 코드를 반환합니다. 지연 호출(defer)된 정리 작업이 모두 실행되도록 os.Exit는 main에서만 호출합니다.
func run() int {
	startedAt := time.Now()

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		return 1
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.IsProduction() {
		logOpts = applog.NewProductionOptions(config.AppName)
	} else {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}
	logOpts.Dir = appConfig.Log.Dir
	if level, err := applog.ParseLevel(appConfig.Log.Level); err == nil {
		logOpts.Level = level
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		return 1
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     appConfig.Env,
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 3. 에러 추적 초기화
	sentryEnabled, err := sentryx.Init(sentryx.Options{
		DSN:         appConfig.Sentry.DSN,
		Environment: appConfig.Env,
		Release:     buildInfo.Version,
		Production:  appConfig.IsProduction(),
	})
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("Sentry 초기화 실패")
		return 1
	}
	if sentryEnabled {
		defer sentryx.Flush(sentryFlushTimeout)
		applog.WithComponent("main").Info("Sentry initialized")
	}

	// 4. 데이터베이스 연결 (실패하면 포트를 열기 전에 종료한다)
	conn, err := database.Connect(context.Background(), appConfig.MongoDB)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("MongoDB 연결 실패")
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), dbCloseTimeout)
		defer cancel()

		if err := conn.Close(ctx); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("MongoDB 연결 종료 실패")
		}
	}()

	// 5. 메트릭 레지스트리 구성
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		database.NewReadyStateCollector(constants.MetricsNamespace, conn),
	)

	// 서비스를 생성하고 초기화한다.
	reporter := health.NewReporter(conn, startedAt)
	apiService := api.NewService(appConfig, reporter, registry, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			return 1
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent("main").Info("서버 가동 완료")

	exitCode := 0
	select {
	case sig := <-termC:
		applog.WithComponentAndFields("main", applog.Fields{
			"signal": sig.String(),
		}).Info("Shutdown signal received")

	case err := <-apiService.Failed():
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("API 서버가 비정상 종료되어 프로그램을 종료합니다")
		exitCode = 1
	}

	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done

	return exitCode
}
