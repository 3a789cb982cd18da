package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 전역 상태(logrus, sync.Once)를 공유하므로 이 파일의 테스트는 병렬로 실행하지 않습니다.

func TestSetup_Validation(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("test"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{
			name:        "Missing Name",
			opts:        Options{Dir: "logs"},
			expectError: "애플리케이션 식별자(Name)가 설정되지 않았습니다",
		},
		{
			name:        "Dir Conflicts with Existing File",
			opts:        Options{Name: "check-file", Dir: tempFile, EnableFileLog: true},
			expectError: "이미 파일로 존재합니다",
		},
		{
			name:        "Unsupported Format",
			opts:        Options{Name: "fmt", Format: "xml"},
			expectError: "지원하지 않는 로그 출력 형식",
		},
		{
			name:        "Critical Without File",
			opts:        Options{Name: "crit", EnableCriticalLog: true},
			expectError: "EnableFileLog",
		},
		{
			name:        "Negative MaxAge",
			opts:        Options{Name: "age", MaxAge: -1},
			expectError: "MaxAge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetForTest()

			_, err := Setup(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestSetup_FileRouting(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	dir := t.TempDir()
	opts := Options{
		Name:              "routing-app",
		Dir:               dir,
		Level:             TraceLevel,
		EnableFileLog:     true,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	}

	c, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Info("info-message")
	WithComponent("test").Error("error-message")
	WithComponent("test").Debug("debug-message")

	require.NoError(t, c.Close())

	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(b)
	}

	mainLog := read("routing-app.log")
	assert.Contains(t, mainLog, "info-message")
	assert.Contains(t, mainLog, "error-message")
	assert.NotContains(t, mainLog, "debug-message")

	criticalLog := read("routing-app.critical.log")
	assert.Contains(t, criticalLog, "error-message")
	assert.NotContains(t, criticalLog, "info-message")

	verboseLog := read("routing-app.verbose.log")
	assert.Contains(t, verboseLog, "debug-message")
}

func TestSetup_ConsoleJSON(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	buf := &safeBuffer{}
	setStdoutForTest(buf)

	c, err := Setup(Options{Name: "json-app", Format: FormatJSON, EnableConsoleLog: true})
	require.NoError(t, err)
	defer c.Close()

	WithComponentAndFields("api.service", Fields{"port": 5000}).Info("Server running")

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	assert.Equal(t, "Server running", decoded["msg"])
	assert.Equal(t, "api.service", decoded["component"])
	assert.EqualValues(t, 5000, decoded["port"])
	assert.Equal(t, "info", decoded["level"])
}

func TestSetup_Idempotent(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	c1, err1 := Setup(Options{Name: "once"})
	c2, err2 := Setup(Options{Name: ""}) // 두 번째 호출의 옵션은 무시됩니다.

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Same(t, c1, c2)

	require.NoError(t, c1.Close())
	require.NoError(t, c1.Close(), "Close는 여러 번 호출해도 안전해야 합니다")
}

func TestSetup_DefaultLevel(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	c, err := Setup(Options{Name: "defaults-app"})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
