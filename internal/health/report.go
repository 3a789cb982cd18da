// Package health 프로세스 가동 시간, 메모리 사용량, 데이터베이스 연결 상태를 모아
// 헬스 체크(liveness) 및 준비 상태(readiness) 보고서를 생성합니다.
//
// 보고서는 요청마다 새로 만들어지며, Reporter는 공유 상태를 변경하지 않습니다.
package health

import (
	"time"
)

const (
	// StatusHealthy 헬스 체크 보고서의 유일한 상태 값
	StatusHealthy = "healthy"

	// StatusReady 데이터베이스가 연결되어 요청을 처리할 수 있는 상태
	StatusReady = "ready"

	// StatusNotReady 데이터베이스가 연결되지 않아 요청을 처리할 수 없는 상태
	StatusNotReady = "not ready"

	// MsgDatabaseNotConnected 준비되지 않은 상태의 사유 메시지
	MsgDatabaseNotConnected = "Database not connected"
)

// TimestampLayout 보고서 timestamp 필드의 형식 (UTC, 밀리초 정밀도)
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Report 헬스 체크 보고서입니다. (GET /api/health)
type Report struct {
	Status    string         `json:"status" example:"healthy"`
	Timestamp string         `json:"timestamp" example:"2026-01-01T00:00:00.000Z"`
	Uptime    int64          `json:"uptime" example:"42"`
	Memory    MemoryUsage    `json:"memory"`
	Database  DatabaseStatus `json:"database"`
}

// MemoryUsage 메모리 사용량입니다. 각 값은 "<n> MB" 형식의 문자열입니다.
type MemoryUsage struct {
	HeapUsed  string `json:"heapUsed" example:"12 MB"`
	HeapTotal string `json:"heapTotal" example:"20 MB"`
	External  string `json:"external" example:"3 MB"`
}

// DatabaseStatus 데이터베이스 연결 상태입니다.
type DatabaseStatus struct {
	Connected  bool `json:"connected" example:"true"`
	ReadyState int  `json:"readyState" example:"1"`
}

// ReadinessReport 준비 상태 보고서입니다. (GET /api/health/ready)
//
// 준비된 경우 Status와 Timestamp가, 준비되지 않은 경우 Status와 Message가 채워집니다.
type ReadinessReport struct {
	Status    string `json:"status" example:"ready"`
	Timestamp string `json:"timestamp,omitempty" example:"2026-01-01T00:00:00.000Z"`
	Message   string `json:"message,omitempty" example:"Database not connected"`
}

// Ready 준비된 상태인지 여부를 반환합니다.
func (r ReadinessReport) Ready() bool {
	return r.Status == StatusReady
}

// FormatTimestamp t를 UTC 기준 밀리초 정밀도의 ISO-8601 문자열로 변환합니다.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
