package response

// ErrorResponse API 오류 응답
//
//	{"error": {"message": "...", "statusCode": 500, "stack": "..."}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail 오류 상세 정보
type ErrorDetail struct {
	// Message 에러 메시지
	Message string `json:"message" example:"Internal Server Error"`

	// StatusCode HTTP 상태 코드
	StatusCode int `json:"statusCode" example:"500"`

	// Stack 스택 트레이스 (운영 환경에서는 포함되지 않음)
	Stack string `json:"stack,omitempty"`
}

// RouteNotFoundResponse 등록되지 않은 경로에 대한 응답
type RouteNotFoundResponse struct {
	Error string `json:"error" example:"Route not found"`
}
