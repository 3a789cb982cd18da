package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "webapp-server"

	// DefaultFilename 명시적인 경로가 주어지지 않았을 때 탐색하는 선택적 설정 파일명입니다.
	// 이 파일이 없으면 기본값과 환경변수만으로 설정을 구성합니다.
	DefaultFilename = AppName + ".json"

	// DotEnvFilename 실행 위치에서 읽어들이는 환경변수 파일명입니다.
	DotEnvFilename = ".env"

	// EnvPrefix 계층형 환경변수의 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자(.)로 변환됩니다. 예: WEBAPP_MONGODB__MAX_POOL_SIZE -> mongodb.max_pool_size
	EnvPrefix = "WEBAPP_"

	// dashboardEnvPrefix 대시보드 전용 계층형 환경변수의 접두사입니다. 예: WEBAPP_DASHBOARD_POLL_INTERVAL
	dashboardEnvPrefix = EnvPrefix + "DASHBOARD_"
)

// Load 실행 위치의 .env 파일과 기본 설정 파일을 읽어 서버 설정을 로드합니다.
func Load() (*AppConfig, error) {
	if err := loadDotEnv(DotEnvFilename); err != nil {
		return nil, err
	}

	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 설정 파일과 환경변수를 읽어 AppConfig 객체를 생성하고 검증합니다.
//
// 우선순위 (뒤로 갈수록 높음):
//  1. 기본값 (Default)
//  2. JSON 설정 파일
//  3. 표준 환경변수 (PORT, MONGODB_URI, FRONTEND_URL 등)
//  4. 접두사 환경변수 (WEBAPP_PORT, WEBAPP_MONGODB__URI 등)
func LoadWithFile(filename string) (*AppConfig, error) {
	var appConfig AppConfig
	if err := loadInto(&appConfig, Default(), filename, appEnvBindings, EnvPrefix, dashboardEnvPrefix); err != nil {
		return nil, err
	}

	if err := appConfig.validate(validate); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "애플리케이션 설정의 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}

// LoadDashboard 대시보드 CLI의 설정을 로드합니다. 설정 파일은 사용하지 않습니다.
func LoadDashboard() (*DashboardConfig, error) {
	if err := loadDotEnv(DotEnvFilename); err != nil {
		return nil, err
	}

	var dashboardConfig DashboardConfig
	if err := loadInto(&dashboardConfig, DefaultDashboard(), "", dashboardEnvBindings, dashboardEnvPrefix, ""); err != nil {
		return nil, err
	}

	if err := dashboardConfig.validate(validate); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "대시보드 설정의 유효성 검증에 실패했습니다")
	}

	return &dashboardConfig, nil
}

// loadDotEnv .env 파일의 값을 프로세스 환경변수로 적재합니다.
// 이미 설정된 환경변수는 덮어쓰지 않으며, 파일이 없으면 무시합니다.
func loadDotEnv(filename string) error {
	if err := godotenv.Load(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("환경변수 파일을 읽을 수 없습니다: '%s'", filename))
	}
	return nil
}

// loadInto 기본값, 설정 파일, 환경변수를 차례로 병합한 뒤 target 구조체로 언마샬링합니다.
//
// excludePrefix가 지정되면 prefix 환경변수 중 해당 접두사를 가진 변수는 무시합니다.
// (서버 설정 로드 시 대시보드 전용 변수로 인해 ErrorUnused 에러가 발생하지 않도록 하기 위함)
func loadInto(target any, defaults any, filename string, bindings envBindings, prefix, excludePrefix string) error {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(defaults, "json"), nil); err != nil {
		return apperrors.Wrap(err, apperrors.System, "기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
			// 기본 설정 파일은 선택 사항이지만, 명시적으로 지정된 파일은 반드시 존재해야 합니다.
			if filename != DefaultFilename {
				return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
			}
		}
	}

	// 3. 표준 환경변수 로드
	if err := k.Load(env.ProviderWithValue("", ".", bindings.transform), nil); err != nil {
		return apperrors.Wrap(err, apperrors.System, "환경변수 로드에 실패했습니다")
	}

	// 4. 접두사 환경변수 로드 (최우선 순위)
	if err := k.Load(env.Provider(prefix, ".", func(s string) string {
		if excludePrefix != "" && strings.HasPrefix(s, excludePrefix) {
			return ""
		}
		s = strings.TrimPrefix(s, prefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return apperrors.Wrap(err, apperrors.System, "환경변수 로드에 실패했습니다")
	}

	// 5. 구조체 언마샬링 (정의되지 않은 키가 있으면 에러)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToDurationHookFunc(),
				stringToSliceHookFunc(),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", target, unmarshalConf); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	return nil
}
