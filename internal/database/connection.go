// Package database MongoDB 연결의 생명주기와 연결 상태(ReadyState)를 관리합니다.
//
// Connection은 main에서 생성되어 명시적으로 소유되며, 헬스 체크 핸들러에는
// ReadyStater 인터페이스로 주입됩니다. 연결 상태는 드라이버의 토폴로지 모니터 이벤트와
// Connect/Close 생명주기 메서드에 의해서만 변경됩니다.
package database

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/webapp-server/internal/config"
	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/darkkaiser/webapp-server/pkg/strutil"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const component = "database.mongodb"

// defaultDisconnectTimeout Close 호출 시 ctx에 데드라인이 없을 때 적용되는 최대 대기 시간
const defaultDisconnectTimeout = 10 * time.Second

// Connection MongoDB 클라이언트와 연결 상태를 소유하는 객체입니다.
type Connection struct {
	client   *mongo.Client
	uri      string
	database string

	mu      sync.RWMutex
	state   ReadyState
	closing bool // Close가 시작된 이후에는 토폴로지 이벤트로 상태가 되돌아가지 않도록 합니다.

	// everConnected 최초 연결 이후의 재연결만 로그로 남기기 위한 플래그
	everConnected bool
}

func newConnection(uri, database string) *Connection {
	return &Connection{
		uri:      uri,
		database: database,
		state:    Disconnected,
	}
}

// Connect MongoDB에 연결하고 Primary 서버에 Ping을 보내 연결을 확인합니다.
//
// 연결 풀 크기와 타임아웃은 cfg를 따르며, 서버 선택 타임아웃 내에 Ping이 성공하지 못하면
// 클라이언트를 정리하고 Unavailable 에러를 반환합니다.
func Connect(ctx context.Context, cfg config.MongoDBConfig) (*Connection, error) {
	c := newConnection(cfg.URI, resolveDatabaseName(cfg.Database, cfg.URI))
	c.setState(Connecting)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(config.AppName).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetConnectTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetServerMonitor(c.serverMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		c.setState(Disconnected)
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "MongoDB 클라이언트를 생성할 수 없습니다")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ServerSelectionTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		c.setState(Disconnected)
		_ = client.Disconnect(context.Background())

		return nil, apperrors.Wrap(err, apperrors.Unavailable, "MongoDB 서버에 연결할 수 없습니다")
	}

	c.client = client
	c.markConnected()

	applog.WithComponentAndFields(component, applog.Fields{
		"uri":      strutil.MaskURICredentials(cfg.URI),
		"database": c.database,
	}).Info("MongoDB connected successfully")

	return c, nil
}

// ReadyState 현재 연결 상태를 반환합니다.
func (c *Connection) ReadyState() ReadyState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Client 내부 mongo.Client를 반환합니다.
func (c *Connection) Client() *mongo.Client {
	return c.client
}

// Database 애플리케이션 기본 데이터베이스 핸들을 반환합니다.
func (c *Connection) Database() *mongo.Database {
	return c.client.Database(c.database)
}

// DatabaseName 애플리케이션 기본 데이터베이스 이름을 반환합니다.
func (c *Connection) DatabaseName() string {
	return c.database
}

// Close 연결을 종료합니다. 여러 번 호출해도 안전합니다.
func (c *Connection) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closing {
		c.mu.Unlock()
		return nil
	}
	c.closing = true
	c.state = Disconnecting
	c.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultDisconnectTimeout)
		defer cancel()
	}

	var err error
	if c.client != nil {
		err = c.client.Disconnect(ctx)
	}

	c.setState(Disconnected)

	if err != nil {
		return apperrors.Wrap(err, apperrors.System, "MongoDB 연결 종료 중 오류가 발생했습니다")
	}

	applog.WithComponent(component).Info("MongoDB 연결이 종료되었습니다")

	return nil
}

func (c *Connection) setState(s ReadyState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = s
}

// markConnected 최초 Ping 성공 후 상태를 Connected로 전환합니다.
func (c *Connection) markConnected() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closing {
		return
	}
	c.state = Connected
	c.everConnected = true
}

// serverMonitor 토폴로지 변화를 연결 상태에 반영하는 드라이버 모니터를 생성합니다.
func (c *Connection) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		TopologyDescriptionChanged: func(e *event.TopologyDescriptionChangedEvent) {
			c.applyTopology(e.NewDescription.HasWritableServer())
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			applog.WithComponentAndFields(component, applog.Fields{
				"connection_id": e.ConnectionID,
				"error":         e.Failure,
			}).Debug("MongoDB connection error")
		},
	}
}

// applyTopology 쓰기 가능한 서버(Standalone, Primary, Mongos)의 존재 여부에 따라 상태를 전이합니다.
//
//   - Connecting: 최초 연결 중에는 토폴로지가 안정될 때까지 상태를 유지합니다. (서버 발견 시 Connected)
//   - Connected -> Disconnected: 쓰기 가능한 서버가 모두 사라지면 전이하며 경고를 남깁니다.
//   - Disconnected -> Connected: 드라이버가 자동으로 재연결하면 전이합니다.
//   - Close 이후의 이벤트는 무시합니다.
func (c *Connection) applyTopology(available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closing {
		return
	}

	switch {
	case available && c.state != Connected:
		reconnected := c.everConnected && c.state == Disconnected
		c.state = Connected
		c.everConnected = true

		if reconnected {
			applog.WithComponent(component).Info("MongoDB reconnected")
		}

	case !available && c.state == Connected:
		c.state = Disconnected

		applog.WithComponent(component).Warn("MongoDB disconnected")
	}
}
