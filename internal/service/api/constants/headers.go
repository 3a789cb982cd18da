package constants

// HTTP 헤더 키 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 속도 제한 (IETF draft-ietf-httpapi-ratelimit-headers)
	// ------------------------------------------------------------------------------------------------

	HeaderRateLimitLimit     = "RateLimit-Limit"
	HeaderRateLimitRemaining = "RateLimit-Remaining"
	HeaderRateLimitReset     = "RateLimit-Reset"
	HeaderRetryAfter         = "Retry-After"

	// ------------------------------------------------------------------------------------------------
	// 보안 헤더 (helmet 기본 구성)
	// ------------------------------------------------------------------------------------------------

	HeaderContentSecurityPolicy         = "Content-Security-Policy"
	HeaderCrossOriginOpenerPolicy       = "Cross-Origin-Opener-Policy"
	HeaderCrossOriginResourcePolicy     = "Cross-Origin-Resource-Policy"
	HeaderOriginAgentCluster            = "Origin-Agent-Cluster"
	HeaderReferrerPolicy                = "Referrer-Policy"
	HeaderXDNSPrefetchControl           = "X-DNS-Prefetch-Control"
	HeaderXDownloadOptions              = "X-Download-Options"
	HeaderXPermittedCrossDomainPolicies = "X-Permitted-Cross-Domain-Policies"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
