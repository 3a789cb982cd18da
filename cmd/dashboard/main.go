// dashboard 백엔드의 헬스 체크 결과를 주기적으로 조회하여 터미널에 표시하는 클라이언트입니다.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/webapp-server/internal/config"
	"github.com/darkkaiser/webapp-server/internal/dashboard"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
)

// clearScreen 화면을 지우고 커서를 왼쪽 위로 옮기는 ANSI 이스케이프 시퀀스
const clearScreen = "\033[H\033[2J"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		return 1
	}

	// 화면 출력과 섞이지 않도록 경고 이상의 로그만 남깁니다.
	logOpts := applog.NewConsoleOptions("dashboard")
	logOpts.Level = applog.WarnLevel

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패: %v\n", err)
		return 1
	}
	defer appLogCloser.Close()

	screen := newScreen(os.Stdout, cfg.BackendPort())

	d := dashboard.New(cfg, dashboard.WithOnUpdate(screen.draw))
	screen.draw(d.State())

	if err := d.Mount(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 대시보드 시작 실패: %v\n", err)
		return 1
	}
	defer d.Unmount()

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	<-termC

	return 0
}

// screen 상태가 바뀔 때마다 화면 전체를 다시 그립니다.
type screen struct {
	mu          sync.Mutex
	w           io.Writer
	backendPort string
}

func newScreen(w io.Writer, backendPort string) *screen {
	return &screen{w: w, backendPort: backendPort}
}

func (s *screen) draw(state dashboard.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = io.WriteString(s.w, clearScreen)
	if err := dashboard.Render(s.w, state, s.backendPort); err != nil {
		applog.WithComponentAndFields("dashboard", applog.Fields{
			"error": err,
		}).Warn("화면 출력 실패")
	}
}
