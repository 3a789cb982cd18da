// dbcheck 배포 전에 MONGODB_URI로 MongoDB에 접속할 수 있는지 점검하는 도구입니다.
//
// 서버와 같은 방식(.env, 환경변수)으로 설정을 읽고, 짧은 타임아웃으로 접속한 뒤
// 데이터베이스 이름, 호스트, 컬렉션 목록을 출력합니다. 성공하면 0, 실패하면 1로 종료합니다.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/darkkaiser/webapp-server/internal/config"
	"github.com/darkkaiser/webapp-server/internal/database"
	applog "github.com/darkkaiser/webapp-server/pkg/log"
	"github.com/darkkaiser/webapp-server/pkg/strutil"
)

const (
	// probeTimeout 서버 선택과 소켓 작업의 타임아웃
	probeTimeout = 5 * time.Second

	// overallTimeout 접속부터 컬렉션 조회까지 전체 작업의 최대 시간
	overallTimeout = 15 * time.Second
)

func main() {
	os.Exit(run(os.Stdout))
}

func run(w io.Writer) int {
	appLogCloser, err := applog.Setup(applog.NewConsoleOptions("dbcheck"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패: %v\n", err)
		return 1
	}
	defer appLogCloser.Close()

	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(w, "환경설정 로드 실패: %v\n", err)
		return 1
	}

	mongoConfig := appConfig.MongoDB
	mongoConfig.ServerSelectionTimeout = probeTimeout
	mongoConfig.SocketTimeout = probeTimeout

	fmt.Fprintln(w, "Testing MongoDB connection...")
	fmt.Fprintf(w, "URI: %s\n", strutil.MaskURICredentials(mongoConfig.URI))

	ctx, cancel := context.WithTimeout(context.Background(), overallTimeout)
	defer cancel()

	conn, err := database.Connect(ctx, mongoConfig)
	if err != nil {
		printFailure(w, err)
		return 1
	}
	defer func() {
		_ = conn.Close(context.Background())
		fmt.Fprintln(w, "\nConnection closed")
	}()

	result, err := conn.Probe(ctx)
	if err != nil {
		printFailure(w, err)
		return 1
	}

	fmt.Fprintln(w, "MongoDB connected successfully!")
	fmt.Fprintf(w, "Database name: %s\n", result.Database)
	fmt.Fprintf(w, "Host: %s\n", strings.Join(result.Hosts, ","))
	fmt.Fprintf(w, "Ping latency: %s\n", result.PingLatency.Round(time.Millisecond))
	fmt.Fprintf(w, "Available collections: [%s]\n", strings.Join(result.Collections, ", "))

	return 0
}

func printFailure(w io.Writer, err error) {
	fmt.Fprintln(w, "MongoDB connection failed:")
	fmt.Fprintf(w, "Error: %v\n", err)

	if hint := diagnose(err); hint != "" {
		fmt.Fprintf(w, "\nFix: %s\n", hint)
	}
}

// diagnose 자주 발생하는 접속 실패 원인에 대한 조치 안내를 반환합니다. 알 수 없는 원인이면 빈 문자열을 반환합니다.
func diagnose(err error) string {
	msg := err.Error()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "ip address") || strings.Contains(lower, "whitelist") || strings.Contains(lower, "access list"):
		return "Add your IP to MongoDB Atlas Network Access\nGo to: https://cloud.mongodb.com → Network Access"
	case strings.Contains(lower, "authentication") || strings.Contains(lower, "auth error"):
		return "Check username/password in connection string"
	case strings.Contains(msg, "ENOTFOUND") || strings.Contains(lower, "no such host"):
		return "Check cluster name in connection string"
	default:
		return ""
	}
}
