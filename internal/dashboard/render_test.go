package dashboard

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOf(t *testing.T, raw string) *Snapshot {
	t.Helper()

	var h Health
	require.NoError(t, json.Unmarshal([]byte(raw), &h))
	return &Snapshot{Health: h, Raw: []byte(raw)}
}

func TestRender(t *testing.T) {
	t.Parallel()

	lastUpdate := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC).Local().Format(displayTimeLayout)

	tests := []struct {
		name        string
		state       State
		contains    []string
		notContains []string
	}{
		{
			name:        "로딩 화면",
			state:       State{Phase: PhaseLoading},
			contains:    []string{"Dashboard", "Loading..."},
			notContains: []string{"Error:", "Raw Response"},
		},
		{
			name:        "에러 화면",
			state:       State{Phase: PhaseError, Err: "Failed to fetch health", Snapshot: &Snapshot{}},
			contains:    []string{"Error: Failed to fetch health", "Make sure the backend is running on port 5000"},
			notContains: []string{"Loading...", "Raw Response"},
		},
		{
			name:  "데이터 화면",
			state: State{Phase: PhaseSuccess, Snapshot: snapshotOf(t, healthyBody)},
			contains: []string{
				"Status       healthy",
				"Uptime       42 seconds",
				"Database     Connected",
				"Last Update  " + lastUpdate,
				"Memory Usage",
				"  Heap Used   12 MB",
				"  Heap Total  20 MB",
				"  External    3 MB",
				"Raw Response\n{\n  \"status\": \"healthy\",",
			},
			notContains: []string{"Loading...", "Error:"},
		},
		{
			name:     "선택 필드 누락",
			state:    State{Phase: PhaseSuccess, Snapshot: snapshotOf(t, `{"uptime":7}`)},
			contains: []string{"Status       Unknown", "Uptime       7 seconds", "Database     Disconnected", "Last Update  Invalid Date"},
			notContains: []string{
				"Memory Usage",
			},
		},
		{
			name:     "데이터베이스 미연결",
			state:    State{Phase: PhaseSuccess, Snapshot: snapshotOf(t, `{"status":"healthy","uptime":1,"database":{"connected":false,"readyState":0}}`)},
			contains: []string{"Database     Disconnected"},
		},
		{
			name:     "Snapshot 없는 성공 상태는 로딩으로 표시",
			state:    State{Phase: PhaseSuccess},
			contains: []string{"Loading..."},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.state, "5000"))

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestIndentJSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{\n  \"a\": 1\n}", indentJSON([]byte(`{"a":1}`)))
	assert.Equal(t, "not json", indentJSON([]byte("not json")), "JSON이 아니면 원문을 그대로 반환합니다")
}
