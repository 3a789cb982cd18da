package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 기본 확장자
	fileExt = "log"

	// 로그 저장 경로가 명시되지 않은 경우 사용되는 디렉토리
	defaultDir = "logs"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100 // 로그 파일 하나당 최대 크기 (단위: MB)
	defaultMaxBackups = 20  // 로테이션 된 로그 파일의 최대 보관 개수
)

var (
	// Setup() 함수가 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 초기화 시 생성된 Closer를 보관하여, Setup 재호출 시 동일한 인스턴스를 반환합니다.
	globalCloser io.Closer

	// 최초 초기화에서 발생한 에러를 보관합니다. 재호출 시 재시도하지 않고 동일한 에러를 반환합니다.
	globalSetupErr error

	// 표준 출력 대상 (테스트에서 교체)
	stdout io.Writer = os.Stdout
)

// Setup 전역 로깅 시스템을 초기화하고 설정된 옵션에 따라 파일/콘솔 출력을 구성합니다.
//
// 주의:
//   - 애플리케이션 시작 시점(main 함수 도입부)에 호출하는 것을 권장합니다.
//   - 반환된 Closer는 반드시 defer를 통해 리소스가 해제되도록 보장해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 실제 포맷팅은 hook에서 한 번만 수행합니다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	h := &hook{
		formatter: newFormatter(opts),
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = stdout
	}

	var closers []io.Closer
	if opts.EnableFileLog {
		logDir := opts.Dir
		if logDir == "" {
			logDir = defaultDir
		}
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
		}

		newRotator := func(suffix string) *lumberjack.Logger {
			maxSize := opts.MaxSizeMB
			if maxSize == 0 {
				maxSize = defaultMaxSizeMB
			}
			maxBackups := opts.MaxBackups
			if maxBackups == 0 {
				maxBackups = defaultMaxBackups
			}

			return &lumberjack.Logger{
				Filename:   filepath.Join(logDir, opts.Name+suffix+"."+fileExt),
				MaxSize:    maxSize,
				MaxBackups: maxBackups,
				MaxAge:     opts.MaxAge,
				LocalTime:  true,
			}
		}

		mainLogger := newRotator("")
		h.mainWriter = mainLogger
		closers = append(closers, mainLogger)

		if opts.EnableCriticalLog {
			criticalLogger := newRotator(".critical")
			h.criticalWriter = criticalLogger
			closers = append(closers, criticalLogger)
		}
		if opts.EnableVerboseLog {
			verboseLogger := newRotator(".verbose")
			h.verboseWriter = verboseLogger
			closers = append(closers, verboseLogger)
		}
	}

	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그 발생 시(os.Exit 호출 직전) 남은 로그를 디스크에 쓰고 리소스를 해제합니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}
