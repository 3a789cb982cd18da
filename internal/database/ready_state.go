package database

import "strconv"

// ReadyState 데이터베이스 연결의 현재 상태입니다.
// 값은 외부 API(/api/health의 database.readyState)에 그대로 노출되므로 변경하면 안 됩니다.
type ReadyState int32

const (
	// Disconnected 연결되어 있지 않음
	Disconnected ReadyState = 0

	// Connected 쿼리를 처리할 수 있는 서버에 연결됨
	Connected ReadyState = 1

	// Connecting 최초 연결 시도 중
	Connecting ReadyState = 2

	// Disconnecting 연결 종료 중
	Disconnecting ReadyState = 3
)

// IsConnected 연결 상태가 Connected인지 여부를 반환합니다.
func (s ReadyState) IsConnected() bool {
	return s == Connected
}

func (s ReadyState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	case Connecting:
		return "connecting"
	case Disconnecting:
		return "disconnecting"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

// ReadyStater 데이터베이스 연결 상태를 조회하는 인터페이스입니다.
// 헬스 체크 핸들러는 구체 타입 대신 이 인터페이스에 의존합니다.
type ReadyStater interface {
	ReadyState() ReadyState
}
