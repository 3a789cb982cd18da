package log

// NewProductionOptions 운영(Production) 환경에 최적화된 로그 설정을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:   appName,
		Level:  InfoLevel,
		Format: FormatJSON, // 로그 수집기 연동

		MaxAge:     30,  // 30일 보관
		MaxSizeMB:  100, // 100MB 단위 로테이션
		MaxBackups: 20,  // 최대 20개 백업 유지

		EnableFileLog:     true,
		EnableCriticalLog: true, // 장애 대응을 위한 중요 로그 격리
		EnableVerboseLog:  true, // 문제 추적을 위한 상세 로그 분리
		EnableConsoleLog:  true, // 컨테이너 환경의 stdout 수집

		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser/webapp-server/",
	}
}

// NewDevelopmentOptions 개발(Development) 환경에 최적화된 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:   appName,
		Level:  DebugLevel,
		Format: FormatText,

		MaxAge:     1,  // 1일 보관
		MaxSizeMB:  50, // 50MB 단위 로테이션
		MaxBackups: 5,  // 최대 5개 백업 유지

		EnableFileLog:     true,
		EnableCriticalLog: false, // 개발 편의를 위한 로그 파일 통합
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser/webapp-server/",
	}
}

// NewConsoleOptions 파일을 생성하지 않고 표준 출력으로만 로그를 기록하는 설정을 반환합니다.
// 대시보드, DB 점검 도구처럼 짧게 실행되는 CLI에서 사용합니다.
func NewConsoleOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            InfoLevel,
		Format:           FormatText,
		EnableConsoleLog: true,
	}
}
