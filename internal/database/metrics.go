package database

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NewReadyStateCollector 연결 상태를 노출하는 Prometheus Gauge를 생성합니다.
// 값은 수집 시점마다 s.ReadyState()에서 읽습니다.
func NewReadyStateCollector(namespace string, s ReadyStater) prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "mongodb",
		Name:      "ready_state",
		Help:      "MongoDB connection state (0=disconnected, 1=connected, 2=connecting, 3=disconnecting).",
	}, func() float64 {
		return float64(s.ReadyState())
	})
}
