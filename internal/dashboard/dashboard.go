package dashboard

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/webapp-server/internal/config"
	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component 대시보드의 로깅용 컴포넌트 이름
const component = "dashboard"

// Phase 대시보드 화면의 표시 단계입니다.
type Phase string

const (
	// PhaseLoading 첫 응답을 받기 전
	PhaseLoading Phase = "loading"

	// PhaseError 마지막 조회가 실패함
	PhaseError Phase = "error"

	// PhaseSuccess 마지막 조회가 성공함
	PhaseSuccess Phase = "success"
)

// State 대시보드의 현재 상태입니다.
//
// 조회가 실패해도 마지막으로 성공한 Snapshot은 유지되지만, 화면에는 Phase에 해당하는 내용만 표시됩니다.
type State struct {
	Phase     Phase
	Snapshot  *Snapshot
	Err       string
	UpdatedAt time.Time
}

// Option Dashboard 생성 옵션
type Option func(*Dashboard)

// WithHTTPClient 헬스 체크 조회에 사용할 HTTP 클라이언트를 지정합니다.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Dashboard) {
		d.httpClient = c
	}
}

// WithOnUpdate 조회가 끝나 상태가 바뀔 때마다 호출될 함수를 지정합니다.
// 호출은 직렬화되며, 마지막으로 반영된 상태가 전달됩니다.
func WithOnUpdate(fn func(State)) Option {
	return func(d *Dashboard) {
		d.onUpdate = fn
	}
}

// Dashboard 헬스 체크 엔드포인트를 주기적으로 조회하여 상태를 유지하는 폴링 클라이언트입니다.
type Dashboard struct {
	client      *Client
	httpClient  *http.Client
	interval    time.Duration
	backendPort string

	onUpdate func(State)
	notifyMu sync.Mutex

	mu    sync.RWMutex
	state State

	cron     *cron.Cron
	cancel   context.CancelFunc
	inflight sync.WaitGroup

	running   bool
	runningMu sync.Mutex
}

// New 설정값으로 Dashboard를 생성합니다. Mount를 호출하기 전까지는 요청을 보내지 않습니다.
func New(cfg *config.DashboardConfig, opts ...Option) *Dashboard {
	if cfg == nil {
		panic("DashboardConfig는 필수입니다")
	}

	d := &Dashboard{
		interval:    cfg.PollInterval,
		backendPort: cfg.BackendPort(),
		state:       State{Phase: PhaseLoading},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.httpClient == nil {
		d.httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	d.client = NewClient(cfg.APIURL, d.httpClient)

	return d
}

// Mount 즉시 한 번 조회한 뒤 주기적인 조회를 시작합니다.
//
// ctx가 취소되면 진행 중인 요청은 중단되지만 스케줄은 Unmount를 호출해야 정리됩니다.
func (d *Dashboard) Mount(ctx context.Context) error {
	d.runningMu.Lock()
	defer d.runningMu.Unlock()

	if d.running {
		applog.WithComponent(component).Warn("대시보드가 이미 마운트되어 있습니다 (중복 호출)")
		return nil
	}

	d.setState(State{Phase: PhaseLoading})

	fetchCtx, cancel := context.WithCancel(ctx)

	// 이전 조회가 끝나지 않아도 다음 조회를 실행합니다. (응답은 도착 순서대로 상태를 덮어씀)
	logger := cron.PrintfLogger(applog.StandardLogger())
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger)),
	)
	c.Schedule(cron.Every(d.interval), cron.FuncJob(func() {
		d.refresh(fetchCtx)
	}))

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.refresh(fetchCtx)
	}()

	c.Start()

	d.cron = c
	d.cancel = cancel
	d.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"health_url": d.client.healthURL,
		"interval":   d.interval.String(),
	}).Info("대시보드 폴링을 시작합니다")

	return nil
}

// Unmount 주기적인 조회를 중단하고 진행 중인 조회가 끝날 때까지 기다립니다.
// 반환된 이후에는 요청이 발생하지 않으며, 여러 번 호출해도 안전합니다.
func (d *Dashboard) Unmount() {
	d.runningMu.Lock()
	defer d.runningMu.Unlock()

	if !d.running {
		return
	}

	d.cancel()
	<-d.cron.Stop().Done()
	d.inflight.Wait()

	d.cron = nil
	d.cancel = nil
	d.running = false

	applog.WithComponent(component).Info("대시보드 폴링을 종료했습니다")
}

// State 현재 상태의 복사본을 반환합니다.
func (d *Dashboard) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.state
}

// BackendPort 오류 안내 메시지에 표시할 백엔드 포트입니다.
func (d *Dashboard) BackendPort() string {
	return d.backendPort
}

func (d *Dashboard) setState(s State) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = s
}

// refresh 헬스 체크를 한 번 조회하여 상태에 반영합니다.
func (d *Dashboard) refresh(ctx context.Context) {
	snapshot, err := d.client.FetchHealth(ctx)

	// Unmount로 취소된 조회의 결과는 버립니다.
	if ctx.Err() != nil {
		return
	}

	d.mu.Lock()
	if err != nil {
		d.state.Phase = PhaseError
		d.state.Err = errorMessage(err)
	} else {
		d.state = State{
			Phase:     PhaseSuccess,
			Snapshot:  snapshot,
			UpdatedAt: time.Now(),
		}
	}
	d.mu.Unlock()

	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"health_url": d.client.healthURL,
			"error":      err,
		}).Warn("헬스 체크 조회에 실패했습니다")
	}

	if d.onUpdate != nil {
		d.notifyMu.Lock()
		defer d.notifyMu.Unlock()

		d.onUpdate(d.State())
	}
}

// errorMessage 화면에 표시할 에러 메시지를 반환합니다.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	return err.Error()
}
