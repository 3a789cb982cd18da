package config

import (
	"strings"

	"github.com/darkkaiser/webapp-server/pkg/strutil"
)

// envBinding 표준 환경변수 하나를 설정 키에 연결합니다.
type envBinding struct {
	key   string // koanf 경로 (예: "mongodb.uri")
	split bool   // 쉼표(,)로 구분된 목록으로 해석할지 여부
}

// envBindings 환경변수 이름을 키로 하는 바인딩 목록입니다.
type envBindings map[string]envBinding

// appEnvBindings 서버 설정에 연결되는 표준 환경변수 목록입니다.
var appEnvBindings = envBindings{
	"NODE_ENV":                {key: "env"},
	"PORT":                    {key: "port"},
	"MONGODB_URI":             {key: "mongodb.uri"},
	"MONGODB_DATABASE":        {key: "mongodb.database"},
	"FRONTEND_URL":            {key: "cors.allow_origins", split: true},
	"RATE_LIMIT_WINDOW_MS":    {key: "rate_limit.window_ms"},
	"RATE_LIMIT_MAX_REQUESTS": {key: "rate_limit.max_requests"},
	"LOG_LEVEL":               {key: "log.level"},
	"LOG_DIR":                 {key: "log.dir"},
	"SENTRY_DSN":              {key: "sentry.dsn"},
}

// dashboardEnvBindings 대시보드 설정에 연결되는 표준 환경변수 목록입니다.
// VITE_API_URL은 프론트엔드 빌드 환경과 같은 .env 파일을 공유하기 위해 지원합니다.
var dashboardEnvBindings = envBindings{
	"VITE_API_URL": {key: "api_url"},
	"API_URL":      {key: "api_url"},
}

// transform env.ProviderWithValue 콜백입니다.
// 바인딩되지 않은 변수와 값이 비어 있는 변수는 빈 키를 반환하여 무시되도록 합니다.
//
// API_URL과 VITE_API_URL이 모두 설정된 경우 어느 값이 적용될지는 환경변수 순서에 따르므로
// 둘 중 하나만 사용하는 것을 권장합니다.
func (b envBindings) transform(name, value string) (string, any) {
	binding, ok := b[name]
	if !ok {
		return "", nil
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	if binding.split {
		items := strutil.SplitAndTrim(value, ",")
		if len(items) == 0 {
			return "", nil
		}
		return binding.key, items
	}

	return binding.key, value
}
