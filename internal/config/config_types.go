package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// 실행 환경 (NODE_ENV)
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// AppConfig 서버 애플리케이션의 모든 설정을 포함하는 최상위 구조체입니다.
// 시작 시점에 한 번 로드/검증되며 이후에는 읽기 전용으로 사용됩니다.
type AppConfig struct {
	Env       string          `json:"env" validate:"oneof=development production test"`
	Port      int             `json:"port" validate:"min=1,max=65535"`
	MongoDB   MongoDBConfig   `json:"mongodb"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Log       LogConfig       `json:"log"`
	Sentry    SentryConfig    `json:"sentry"`
}

// Default 모든 항목이 기본값으로 채워진 AppConfig를 반환합니다.
// MongoDB 연결 문자열은 기본값이 없으므로 반드시 환경변수로 지정해야 합니다.
func Default() AppConfig {
	return AppConfig{
		Env:  EnvDevelopment,
		Port: 5000,
		MongoDB: MongoDBConfig{
			MaxPoolSize:            10,
			MinPoolSize:            5,
			ServerSelectionTimeout: 5 * time.Second,
			SocketTimeout:          45 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
		},
		RateLimit: RateLimitConfig{
			WindowMS:    15 * 60 * 1000,
			MaxRequests: 100,
		},
		Log: LogConfig{
			Level: "info",
			Dir:   "logs",
		},
	}
}

// IsProduction 운영 환경 여부를 반환합니다.
func (c *AppConfig) IsProduction() bool {
	return c.Env == EnvProduction
}

// IsDevelopment 개발 환경 여부를 반환합니다.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Validate 현재 설정값의 유효성을 검증합니다.
func (c *AppConfig) Validate() error {
	return c.validate(validate)
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := v.Var(c.Env, "oneof=development production test"); err != nil {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("실행 환경(NODE_ENV)은 development, production, test 중 하나여야 합니다: '%s'", c.Env))
	}
	if err := v.Var(c.Port, "min=1,max=65535"); err != nil {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("서버 포트(PORT)는 1에서 65535 사이의 값이어야 합니다: %d", c.Port))
	}

	if err := c.MongoDB.validate(v); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	if err := c.RateLimit.validate(); err != nil {
		return err
	}
	if err := c.Log.validate(v); err != nil {
		return err
	}
	if err := c.Sentry.validate(v); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 운영 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 에러를 발생시키지는 않고, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.Port < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.Port))
	}

	if c.IsProduction() {
		if c.CORS.AllowsAnyOrigin() {
			warnings = append(warnings, "운영 환경에서 모든 출처(*)의 CORS 요청을 허용하도록 설정되었습니다")
		}
		if c.Sentry.DSN == "" {
			warnings = append(warnings, "운영 환경이지만 에러 추적(SENTRY_DSN)이 설정되지 않았습니다")
		}
	}

	return warnings
}

// MongoDBConfig MongoDB 연결 설정입니다.
type MongoDBConfig struct {
	URI                    string        `json:"uri"`
	Database               string        `json:"database"`
	MaxPoolSize            uint64        `json:"max_pool_size" validate:"min=1"`
	MinPoolSize            uint64        `json:"min_pool_size" validate:"ltefield=MaxPoolSize"`
	ServerSelectionTimeout time.Duration `json:"server_selection_timeout" validate:"gt=0"`
	SocketTimeout          time.Duration `json:"socket_timeout" validate:"gt=0"`
}

func (c *MongoDBConfig) validate(v *validator.Validate) error {
	// 연결 문자열 누락은 가장 흔한 설정 오류이므로 별도의 메시지로 안내합니다.
	if c.URI == "" {
		return apperrors.New(apperrors.InvalidInput, "MONGODB_URI 환경변수가 설정되지 않았습니다")
	}
	if err := v.Var(c.URI, "mongodb_uri"); err != nil {
		return apperrors.New(apperrors.InvalidInput, "MongoDB 연결 문자열(MONGODB_URI) 형식이 올바르지 않습니다 (형식: mongodb://host[:port]/db 또는 mongodb+srv://host/db)")
	}

	if err := v.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				switch fieldErr.StructField() {
				case "MaxPoolSize":
					return apperrors.New(apperrors.InvalidInput, "MongoDB 최대 연결 풀 크기(max_pool_size)는 1 이상이어야 합니다")
				case "MinPoolSize":
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("MongoDB 최소 연결 풀 크기(min_pool_size: %d)는 최대 연결 풀 크기(max_pool_size: %d)보다 클 수 없습니다", c.MinPoolSize, c.MaxPoolSize))
				case "ServerSelectionTimeout", "SocketTimeout":
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("MongoDB 타임아웃(%s)은 0보다 커야 합니다", fieldErr.Field()))
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "MongoDB 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return nil
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책 설정입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

// AllowsAnyOrigin 와일드카드(*)로 모든 출처를 허용하는지 여부를 반환합니다.
func (c *CORSConfig) AllowsAnyOrigin() bool {
	return len(c.AllowOrigins) == 1 && c.AllowOrigins[0] == "*"
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(FRONTEND_URL) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	if err := v.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				if fieldErr.Tag() == "cors_origin" {
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value()))
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return nil
}

// RateLimitConfig IP별 요청 속도 제한 설정입니다.
// WindowMS 동안 MaxRequests개의 요청을 허용합니다.
type RateLimitConfig struct {
	WindowMS    int64 `json:"window_ms"`
	MaxRequests int   `json:"max_requests"`
}

// Window 속도 제한 구간을 time.Duration으로 반환합니다.
func (c *RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMS) * time.Millisecond
}

func (c *RateLimitConfig) validate() error {
	if c.WindowMS <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 제한 구간(RATE_LIMIT_WINDOW_MS)은 0보다 커야 합니다: %d", c.WindowMS))
	}
	if c.MaxRequests <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("구간당 최대 요청 수(RATE_LIMIT_MAX_REQUESTS)는 0보다 커야 합니다: %d", c.MaxRequests))
	}
	return nil
}

// LogConfig 로깅 설정입니다.
type LogConfig struct {
	Level string `json:"level" validate:"log_level"`
	Dir   string `json:"dir"`
}

func (c *LogConfig) validate(v *validator.Validate) error {
	if err := v.Var(c.Level, "log_level"); err != nil {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("로그 레벨(LOG_LEVEL)이 올바르지 않습니다: '%s' (trace, debug, info, warn, error 중 하나)", c.Level))
	}
	return nil
}

// SentryConfig 에러 추적(Sentry) 설정입니다. DSN이 비어 있으면 비활성화됩니다.
type SentryConfig struct {
	DSN string `json:"dsn"`
}

// Enabled 에러 추적 활성화 여부를 반환합니다.
func (c *SentryConfig) Enabled() bool {
	return c.DSN != ""
}

func (c *SentryConfig) validate(v *validator.Validate) error {
	if !c.Enabled() {
		return nil
	}
	if err := v.Var(c.DSN, "http_url"); err != nil {
		return apperrors.New(apperrors.InvalidInput, "에러 추적 DSN(SENTRY_DSN) 형식이 올바르지 않습니다")
	}
	return nil
}
