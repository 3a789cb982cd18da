package health

import (
	"time"

	"github.com/darkkaiser/webapp-server/internal/database"
)

// Reporter 헬스 체크 및 준비 상태 보고서를 생성합니다.
type Reporter struct {
	db        database.ReadyStater
	startedAt time.Time

	now        func() time.Time
	readMemory func() MemoryStats
}

// Option Reporter 생성 옵션
type Option func(*Reporter)

// WithClock 현재 시각을 반환하는 함수를 지정합니다.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		r.now = now
	}
}

// WithMemoryReader 메모리 통계를 읽는 함수를 지정합니다.
func WithMemoryReader(read func() MemoryStats) Option {
	return func(r *Reporter) {
		r.readMemory = read
	}
}

// NewReporter Reporter를 생성합니다. startedAt은 프로세스 시작 시각입니다.
func NewReporter(db database.ReadyStater, startedAt time.Time, opts ...Option) *Reporter {
	if db == nil {
		panic("health: ReadyStater는 필수입니다")
	}

	r := &Reporter{
		db:         db,
		startedAt:  startedAt,
		now:        time.Now,
		readMemory: ReadRuntimeMemory,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Health 현재 프로세스와 데이터베이스 상태로 헬스 체크 보고서를 생성합니다.
// 데이터베이스 연결 여부와 관계없이 항상 StatusHealthy를 보고합니다.
func (r *Reporter) Health() Report {
	now := r.now()
	state := r.db.ReadyState()

	return Report{
		Status:    StatusHealthy,
		Timestamp: FormatTimestamp(now),
		Uptime:    r.uptimeSeconds(now),
		Memory:    r.readMemory().usage(),
		Database: DatabaseStatus{
			Connected:  state.IsConnected(),
			ReadyState: int(state),
		},
	}
}

// Readiness 데이터베이스 연결 상태로 준비 상태 보고서를 생성합니다.
func (r *Reporter) Readiness() ReadinessReport {
	if !r.db.ReadyState().IsConnected() {
		return ReadinessReport{
			Status:  StatusNotReady,
			Message: MsgDatabaseNotConnected,
		}
	}

	return ReadinessReport{
		Status:    StatusReady,
		Timestamp: FormatTimestamp(r.now()),
	}
}

// uptimeSeconds 시작 이후 경과한 시간(초, 내림)을 반환합니다. 음수가 되지 않습니다.
func (r *Reporter) uptimeSeconds(now time.Time) int64 {
	d := now.Sub(r.startedAt)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}
