package database

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ProbeResult 연결 점검(dbcheck) 결과입니다.
type ProbeResult struct {
	Database    string
	Hosts       []string
	Collections []string
	PingLatency time.Duration
}

// Probe 연결된 서버에 Ping을 보내고 기본 데이터베이스의 컬렉션 목록을 조회합니다.
func (c *Connection) Probe(ctx context.Context) (*ProbeResult, error) {
	if c.client == nil {
		return nil, apperrors.New(apperrors.Unavailable, "MongoDB에 연결되어 있지 않습니다")
	}

	start := time.Now()
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "MongoDB Ping에 실패했습니다")
	}
	latency := time.Since(start)

	names, err := c.Database().ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "컬렉션 목록을 조회할 수 없습니다")
	}
	sort.Strings(names)

	hosts, _ := parseURI(c.uri)

	return &ProbeResult{
		Database:    c.database,
		Hosts:       hosts,
		Collections: names,
		PingLatency: latency,
	}, nil
}
