package constants

// 클라이언트에게 반환되는 메시지 상수입니다.
const (
	// MsgWelcome GET /api 환영 메시지
	MsgWelcome = "Welcome to MERN Backend API"

	// ------------------------------------------------------------------------------------------------
	// HTTP 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 404 Not Found, 405 Method Not Allowed
	ErrMsgRouteNotFound = "Route not found"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "Request entity too large"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "Too many requests from this IP, please try again later."

	// 500 Internal Server Error
	ErrMsgInternalServer = "Internal Server Error"
)
