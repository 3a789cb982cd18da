package log

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mocks & Helpers
// =============================================================================

type failWriter struct {
	err error
}

func (w *failWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}

// safeBuffer hook.Fire는 Read Lock만 잡으므로 동시 쓰기에 안전한 버퍼가 필요합니다.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestHook() (*hook, *safeBuffer, *safeBuffer, *safeBuffer, *safeBuffer) {
	mainBuf, critBuf, verbBuf, consBuf := &safeBuffer{}, &safeBuffer{}, &safeBuffer{}, &safeBuffer{}

	h := &hook{
		mainWriter:     mainBuf,
		criticalWriter: critBuf,
		verboseWriter:  verbBuf,
		consoleWriter:  consBuf,
		formatter:      &TextFormatter{DisableTimestamp: true},
	}
	return h, mainBuf, critBuf, verbBuf, consBuf
}

func newEntry(level Level, msg string) *Entry {
	e := &Entry{Logger: StandardLogger(), Data: Fields{}}
	e.Level = level
	e.Message = msg
	return e
}

// =============================================================================
// Unit Tests
// =============================================================================

func TestHook_Levels(t *testing.T) {
	h := &hook{}
	assert.Equal(t, AllLevels, h.Levels())
}

func TestHook_Fire_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		level      Level
		expectMain bool
		expectCrit bool
		expectVerb bool
	}{
		{"Error", ErrorLevel, true, true, false},
		{"Warn", WarnLevel, true, false, false},
		{"Info", InfoLevel, true, false, false},
		{"Debug", DebugLevel, false, false, true},
		{"Trace", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, mainBuf, critBuf, verbBuf, consBuf := newTestHook()
			require.NoError(t, h.Fire(newEntry(tt.level, "routing-check")))

			assert.Equal(t, tt.expectMain, mainBuf.String() != "", "main")
			assert.Equal(t, tt.expectCrit, critBuf.String() != "", "critical")
			assert.Equal(t, tt.expectVerb, verbBuf.String() != "", "verbose")
			assert.Contains(t, consBuf.String(), "routing-check", "console는 모든 레벨을 기록해야 합니다")
		})
	}
}

func TestHook_Fire_WriterErrors(t *testing.T) {
	t.Parallel()

	t.Run("Critical 기록 실패 시에도 Main 기록은 수행된다", func(t *testing.T) {
		t.Parallel()

		h, mainBuf, _, _, _ := newTestHook()
		h.criticalWriter = &failWriter{err: errors.New("disk full")}

		err := h.Fire(newEntry(ErrorLevel, "boom"))
		require.Error(t, err)
		assert.Equal(t, "disk full", err.Error())
		assert.Contains(t, mainBuf.String(), "boom")
	})

	t.Run("Console 기록 실패는 전파되지 않는다", func(t *testing.T) {
		t.Parallel()

		h, mainBuf, _, _, _ := newTestHook()
		h.consoleWriter = &failWriter{err: errors.New("broken pipe")}

		require.NoError(t, h.Fire(newEntry(InfoLevel, "hello")))
		assert.Contains(t, mainBuf.String(), "hello")
	})
}

func TestHook_Close(t *testing.T) {
	t.Parallel()

	h, mainBuf, _, _, consBuf := newTestHook()
	require.NoError(t, h.Close())

	require.NoError(t, h.Fire(newEntry(InfoLevel, "after-close")))
	assert.Empty(t, mainBuf.String())
	assert.Empty(t, consBuf.String())
}
