package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain runs tests and checks for goroutine leaks.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const healthyBody = `{"status":"healthy","timestamp":"2026-05-01T12:00:00.000Z","uptime":42,` +
	`"memory":{"heapUsed":"12 MB","heapTotal":"20 MB","external":"3 MB"},` +
	`"database":{"connected":true,"readyState":1}}`

// newTestHTTPClient 연결을 재사용하지 않는 HTTP 클라이언트를 생성합니다. (테스트 종료 후 고루틴이 남지 않도록)
func newTestHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   2 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
}

// failingTransport 모든 요청을 네트워크 오류로 실패시킵니다.
type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")
}

func TestClient_FetchHealth(t *testing.T) {
	var gotPath, gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(healthyBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", newTestHTTPClient())

	snapshot, err := c.FetchHealth(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/health", gotPath, "API 주소 끝의 '/'는 제거되어야 합니다")
	assert.True(t, strings.HasPrefix(gotUA, "webapp-dashboard/"), "User-Agent: %s", gotUA)
	assert.Equal(t, "application/json", gotAccept)

	assert.Equal(t, "healthy", snapshot.Health.Status)
	assert.Equal(t, float64(42), snapshot.Health.Uptime)
	require.NotNil(t, snapshot.Health.Database)
	assert.True(t, snapshot.Health.Database.Connected)
	assert.Equal(t, 1, snapshot.Health.Database.ReadyState)
	require.NotNil(t, snapshot.Health.Memory)
	assert.Equal(t, "12 MB", snapshot.Health.Memory.HeapUsed)
	assert.JSONEq(t, healthyBody, string(snapshot.Raw))
}

func TestClient_FetchHealth_Failures(t *testing.T) {
	tests := []struct {
		name            string
		handler         http.HandlerFunc
		transport       http.RoundTripper
		expectedMessage string
		expectedType    apperrors.ErrorType
	}{
		{
			name: "503 응답",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"not ready"}`))
			},
			expectedMessage: ErrMsgFetchFailed,
			expectedType:    apperrors.Unavailable,
		},
		{
			name: "404 응답",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectedMessage: ErrMsgFetchFailed,
			expectedType:    apperrors.Unavailable,
		},
		{
			name: "JSON이 아닌 응답",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>proxy error</html>"))
			},
			expectedMessage: ErrMsgInvalidResponse,
			expectedType:    apperrors.InvalidInput,
		},
		{
			name:            "네트워크 오류",
			transport:       failingTransport{},
			expectedMessage: ErrMsgNetwork,
			expectedType:    apperrors.Unavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiURL := "http://localhost:5000/api"
			httpClient := newTestHTTPClient()

			if tt.handler != nil {
				srv := httptest.NewServer(tt.handler)
				defer srv.Close()
				apiURL = srv.URL + "/api"
			}
			if tt.transport != nil {
				httpClient.Transport = tt.transport
			}

			snapshot, err := NewClient(apiURL, httpClient).FetchHealth(context.Background())

			require.Error(t, err)
			assert.Nil(t, snapshot)
			assert.True(t, apperrors.Is(err, tt.expectedType), "에러 타입이 일치해야 합니다: %v", err)
			assert.Equal(t, tt.expectedMessage, errorMessage(err))
		})
	}
}

func TestClient_FetchHealth_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL+"/api", newTestHTTPClient()).FetchHealth(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
