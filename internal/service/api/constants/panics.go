package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired 패닉 메시지: AppConfig 필수
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgHealthReporterRequired 패닉 메시지: health.Reporter 필수
	PanicMsgHealthReporterRequired = "HealthReporter는 필수입니다"

	// PanicMsgMetricsRegistryRequired 패닉 메시지: Prometheus Registry 필수
	PanicMsgMetricsRegistryRequired = "Metrics Registry는 필수입니다"

	// PanicMsgRateLimitWindowInvalid 패닉 메시지: window 설정 오류
	PanicMsgRateLimitWindowInvalid = "RateLimiting: window는 양수여야 합니다 (현재값: %s)"

	// PanicMsgRateLimitMaxRequestsInvalid 패닉 메시지: maxRequests 설정 오류
	PanicMsgRateLimitMaxRequestsInvalid = "RateLimiting: maxRequests는 양수여야 합니다 (현재값: %d)"
)
