package config

import (
	"fmt"
	"net/url"
	"time"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// defaultBackendPort API URL에 포트가 명시되지 않았을 때 안내 메시지에 사용하는 백엔드 포트입니다.
const defaultBackendPort = "5000"

// DashboardConfig 헬스 대시보드(폴링 클라이언트) 설정입니다.
type DashboardConfig struct {
	APIURL         string        `json:"api_url"`
	PollInterval   time.Duration `json:"poll_interval"`
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultDashboard 기본 대시보드 설정을 반환합니다.
func DefaultDashboard() DashboardConfig {
	return DashboardConfig{
		APIURL:         "http://localhost:5000/api",
		PollInterval:   10 * time.Second,
		RequestTimeout: 5 * time.Second,
	}
}

// BackendPort API URL에서 백엔드 포트를 추출합니다.
// 포트가 명시되지 않은 경우 기본값(5000)을 반환합니다.
func (c *DashboardConfig) BackendPort() string {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Port() == "" {
		return defaultBackendPort
	}
	return u.Port()
}

func (c *DashboardConfig) validate(v *validator.Validate) error {
	if err := v.Var(c.APIURL, "http_url"); err != nil {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("API 주소(API_URL)가 올바르지 않습니다: '%s' (예: http://localhost:5000/api)", c.APIURL))
	}
	// 스케줄러의 최소 단위가 1초이므로 그보다 짧은 주기는 허용하지 않습니다.
	if c.PollInterval < time.Second {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("폴링 주기(poll_interval)는 1초 이상이어야 합니다: %s", c.PollInterval))
	}
	if c.RequestTimeout <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 타임아웃(request_timeout)은 0보다 커야 합니다: %s", c.RequestTimeout))
	}
	return nil
}
