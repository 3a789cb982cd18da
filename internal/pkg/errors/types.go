package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
//
// HTTP 응답 코드 결정(httputil.StatusCode)과 로깅 레벨 결정에 사용됩니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러 (기본값, 사용 지양)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크, DB 연결 등)
	System

	// Unauthorized 인증 실패
	Unauthorized

	// Forbidden 권한 없음
	Forbidden

	// InvalidInput 잘못된 입력값 또는 설정값 (유효성 검사 실패)
	InvalidInput

	// Conflict 리소스 충돌
	Conflict

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 서비스 일시적 사용 불가 (DB 미연결 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	Unauthorized: "Unauthorized",
	Forbidden:    "Forbidden",
	InvalidInput: "InvalidInput",
	Conflict:     "Conflict",
	NotFound:     "NotFound",
	Timeout:      "Timeout",
	Unavailable:  "Unavailable",
}

// String ErrorType의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
