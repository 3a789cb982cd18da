package config

import (
	"testing"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newValidConfig 유효성 검증을 통과하는 기본 설정을 생성합니다.
func newValidConfig() *AppConfig {
	cfg := Default()
	cfg.MongoDB.URI = testMongoURI
	return &cfg
}

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		modify      func(c *AppConfig)
		errContains string
	}{
		{"성공: 기본 설정", func(c *AppConfig) {}, ""},
		{"성공: 와일드카드 CORS", func(c *AppConfig) { c.CORS.AllowOrigins = []string{"*"} }, ""},
		{"성공: 테스트 환경", func(c *AppConfig) { c.Env = EnvTest }, ""},
		{"성공: Sentry DSN", func(c *AppConfig) { c.Sentry.DSN = "https://public@o1.ingest.sentry.io/2" }, ""},

		{"실패: 알 수 없는 실행 환경", func(c *AppConfig) { c.Env = "staging" }, "NODE_ENV"},
		{"실패: 포트 0", func(c *AppConfig) { c.Port = 0 }, "PORT"},
		{"실패: 포트 범위 초과", func(c *AppConfig) { c.Port = 70000 }, "PORT"},
		{"실패: MongoDB URI 누락", func(c *AppConfig) { c.MongoDB.URI = "" }, "MONGODB_URI 환경변수가 설정되지 않았습니다"},
		{"실패: MongoDB URI 형식", func(c *AppConfig) { c.MongoDB.URI = "mysql://localhost" }, "형식이 올바르지 않습니다"},
		{"실패: 최대 풀 크기 0", func(c *AppConfig) { c.MongoDB.MaxPoolSize = 0; c.MongoDB.MinPoolSize = 0 }, "max_pool_size"},
		{"실패: 최소 풀 > 최대 풀", func(c *AppConfig) { c.MongoDB.MinPoolSize = 20 }, "min_pool_size"},
		{"실패: 서버 선택 타임아웃 0", func(c *AppConfig) { c.MongoDB.ServerSelectionTimeout = 0 }, "server_selection_timeout"},
		{"실패: CORS 목록 비어있음", func(c *AppConfig) { c.CORS.AllowOrigins = nil }, "비어있습니다"},
		{"실패: 와일드카드 혼용", func(c *AppConfig) { c.CORS.AllowOrigins = []string{"*", "http://localhost:3000"} }, "와일드카드"},
		{"실패: CORS Origin 형식", func(c *AppConfig) { c.CORS.AllowOrigins = []string{"http://localhost:3000/"} }, "CORS Origin 형식"},
		{"실패: 요청 제한 구간 0", func(c *AppConfig) { c.RateLimit.WindowMS = 0 }, "RATE_LIMIT_WINDOW_MS"},
		{"실패: 최대 요청 수 0", func(c *AppConfig) { c.RateLimit.MaxRequests = 0 }, "RATE_LIMIT_MAX_REQUESTS"},
		{"실패: 로그 레벨", func(c *AppConfig) { c.Log.Level = "loud" }, "LOG_LEVEL"},
		{"실패: Sentry DSN 형식", func(c *AppConfig) { c.Sentry.DSN = "not a url" }, "SENTRY_DSN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newValidConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		})
	}
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("개발 환경 기본 설정은 경고가 없다", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, newValidConfig().VerifyRecommendations())
	})

	t.Run("예약 포트 사용 경고", func(t *testing.T) {
		t.Parallel()

		cfg := newValidConfig()
		cfg.Port = 80

		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "시스템 예약 포트")
	})

	t.Run("운영 환경의 와일드카드 CORS와 에러 추적 미설정 경고", func(t *testing.T) {
		t.Parallel()

		cfg := newValidConfig()
		cfg.Env = EnvProduction
		cfg.CORS.AllowOrigins = []string{"*"}

		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "CORS")
		assert.Contains(t, warnings[1], "SENTRY_DSN")
	})
}

func TestCORSConfig_AllowsAnyOrigin(t *testing.T) {
	t.Parallel()

	assert.True(t, (&CORSConfig{AllowOrigins: []string{"*"}}).AllowsAnyOrigin())
	assert.False(t, (&CORSConfig{AllowOrigins: []string{"http://localhost:3000"}}).AllowsAnyOrigin())
	assert.False(t, (&CORSConfig{}).AllowsAnyOrigin())
}
