package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기 (10MiB = 10,485,760 바이트)
	// gommon bytes 형식에서 "M"은 10진수(1,000,000)이므로 반드시 이진 단위(MiB)를 사용합니다.
	DefaultMaxBodySize = "10MiB"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (10초)
	// 헤더를 매우 느리게 전송하는 클라이언트(Slowloris)의 연결 점유를 막습니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultReadTimeout 요청 본문 읽기 최대 대기 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 대기 시간 (요청 타임아웃보다 길어야 합니다)
	DefaultWriteTimeout = 65 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 시 진행 중인 요청을 기다리는 최대 시간
	ShutdownTimeout = 5 * time.Second
)

// API 메타 정보입니다.
const (
	// APIVersion GET /api 응답에 포함되는 API 버전
	APIVersion = "1.0.0"

	// MetricsNamespace Prometheus 메트릭 이름 접두사
	MetricsNamespace = "webapp"
)
