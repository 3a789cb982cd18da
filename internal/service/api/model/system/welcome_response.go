package system

// WelcomeResponse API 루트(GET /api) 응답
type WelcomeResponse struct {
	// 환영 메시지
	Message string `json:"message" example:"Welcome to MERN Backend API"`
	// API 버전
	Version string `json:"version" example:"1.0.0"`
	// 응답 시각(UTC, ISO-8601)
	Timestamp string `json:"timestamp" example:"2026-01-01T00:00:00.000Z"`
}
