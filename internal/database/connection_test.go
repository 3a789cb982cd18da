package database

import (
	"context"
	"testing"
	"time"

	"github.com/darkkaiser/webapp-server/internal/config"
	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyState_String(t *testing.T) {
	tests := []struct {
		state ReadyState
		want  string
	}{
		{Disconnected, "disconnected"},
		{Connected, "connected"},
		{Connecting, "connecting"},
		{Disconnecting, "disconnecting"},
		{ReadyState(7), "unknown(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}

	assert.True(t, Connected.IsConnected())
	assert.False(t, Connecting.IsConnected())
	assert.EqualValues(t, 0, Disconnected)
	assert.EqualValues(t, 1, Connected)
	assert.EqualValues(t, 2, Connecting)
	assert.EqualValues(t, 3, Disconnecting)
}

func TestConnection_ApplyTopology(t *testing.T) {
	t.Run("연결 중 서버 발견 시 Connected", func(t *testing.T) {
		c := newConnection("mongodb://localhost:27017", "app")
		c.setState(Connecting)

		c.applyTopology(false)
		assert.Equal(t, Connecting, c.ReadyState(), "연결 중에는 서버가 없어도 상태를 유지해야 합니다")

		c.applyTopology(true)
		assert.Equal(t, Connected, c.ReadyState())
	})

	t.Run("서버 유실 후 재연결", func(t *testing.T) {
		c := newConnection("mongodb://localhost:27017", "app")
		c.markConnected()

		c.applyTopology(false)
		assert.Equal(t, Disconnected, c.ReadyState())

		c.applyTopology(false)
		assert.Equal(t, Disconnected, c.ReadyState())

		c.applyTopology(true)
		assert.Equal(t, Connected, c.ReadyState())
	})

	t.Run("종료 이후 이벤트는 무시", func(t *testing.T) {
		c := newConnection("mongodb://localhost:27017", "app")
		c.markConnected()

		require.NoError(t, c.Close(context.Background()))
		assert.Equal(t, Disconnected, c.ReadyState())

		c.applyTopology(true)
		assert.Equal(t, Disconnected, c.ReadyState())

		c.markConnected()
		assert.Equal(t, Disconnected, c.ReadyState())
	})
}

func TestConnection_CloseIsIdempotent(t *testing.T) {
	c := newConnection("mongodb://localhost:27017", "app")
	c.markConnected()

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, Disconnected, c.ReadyState())
}

func TestConnection_ServerMonitor(t *testing.T) {
	c := newConnection("mongodb://localhost:27017", "app")
	m := c.serverMonitor()

	require.NotNil(t, m)
	assert.NotNil(t, m.TopologyDescriptionChanged)
}

func TestConnect_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("short 모드에서는 네트워크 타임아웃 테스트를 건너뜁니다")
	}

	cfg := config.MongoDBConfig{
		URI:                    "mongodb://127.0.0.1:1/app?connect=direct",
		MaxPoolSize:            1,
		ServerSelectionTimeout: 200 * time.Millisecond,
		SocketTimeout:          200 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := Connect(ctx, cfg)
	require.Error(t, err)
	assert.Nil(t, conn)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
}

func TestReadyStateCollector(t *testing.T) {
	c := newConnection("mongodb://localhost:27017", "app")
	collector := NewReadyStateCollector("webapp", c)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(collector))

	assert.Equal(t, float64(Disconnected), testutil.ToFloat64(collector))

	c.markConnected()
	assert.Equal(t, float64(Connected), testutil.ToFloat64(collector))
}
