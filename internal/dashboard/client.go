// Package dashboard 백엔드의 헬스 체크 엔드포인트를 주기적으로 조회하여 화면에 표시하는 대시보드 클라이언트입니다.
//
// Dashboard는 Mount 시점에 즉시 한 번 조회한 뒤 설정된 주기마다 다시 조회하며,
// Unmount가 반환된 이후에는 더 이상 요청을 보내지 않습니다.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/darkkaiser/webapp-server/internal/pkg/version"
)

const (
	// healthPath API 기본 주소 뒤에 붙는 헬스 체크 경로
	healthPath = "/health"

	// maxResponseSize 헬스 체크 응답 본문의 최대 크기
	maxResponseSize = 1 << 20

	// ErrMsgFetchFailed 2xx가 아닌 응답을 받았을 때의 에러 메시지
	ErrMsgFetchFailed = "Failed to fetch health"

	// ErrMsgNetwork 요청 자체가 실패했을 때(연결 거부, 타임아웃 등)의 에러 메시지
	ErrMsgNetwork = "Failed to fetch"

	// ErrMsgInvalidResponse 응답 본문을 해석할 수 없을 때의 에러 메시지
	ErrMsgInvalidResponse = "Invalid health response"
)

// Health 헬스 체크 응답입니다.
// 서버 버전에 따라 필드가 빠질 수 있으므로 선택적인 블록은 포인터로 받습니다.
type Health struct {
	Status    string    `json:"status"`
	Timestamp string    `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
	Memory    *Memory   `json:"memory,omitempty"`
	Database  *Database `json:"database,omitempty"`
}

// Memory 메모리 사용량 블록
type Memory struct {
	HeapUsed  string `json:"heapUsed"`
	HeapTotal string `json:"heapTotal"`
	External  string `json:"external"`
}

// Database 데이터베이스 연결 상태 블록
type Database struct {
	Connected  bool `json:"connected"`
	ReadyState int  `json:"readyState"`
}

// Snapshot 한 번의 조회 결과입니다. Raw는 서버가 보낸 응답 본문 그대로입니다.
type Snapshot struct {
	Health Health
	Raw    []byte
}

// Client 헬스 체크 엔드포인트를 조회하는 HTTP 클라이언트입니다.
type Client struct {
	httpClient *http.Client
	healthURL  string
	userAgent  string
}

// NewClient apiURL(예: http://localhost:5000/api)을 기준으로 하는 Client를 생성합니다.
// httpClient가 nil이면 http.DefaultClient를 사용합니다.
func NewClient(apiURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		healthURL:  strings.TrimRight(apiURL, "/") + healthPath,
		userAgent:  fmt.Sprintf("webapp-dashboard/%s", version.Get().Version),
	}
}

// FetchHealth 헬스 체크 엔드포인트를 한 번 조회합니다.
func (c *Client) FetchHealth(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, ErrMsgNetwork)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, ErrMsgNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 연결 재사용을 위해 남은 본문을 비웁니다.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, apperrors.Wrap(fmt.Errorf("unexpected status code: %d", resp.StatusCode), apperrors.Unavailable, ErrMsgFetchFailed)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, ErrMsgNetwork)
	}

	var h Health
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, ErrMsgInvalidResponse)
	}

	return &Snapshot{Health: h, Raw: raw}, nil
}
