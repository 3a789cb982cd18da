package database

import "strings"

// defaultDatabaseName 연결 문자열과 설정 모두에 데이터베이스 이름이 없을 때 사용하는 이름입니다.
const defaultDatabaseName = "test"

// parseURI MongoDB 연결 문자열에서 호스트 목록과 데이터베이스 이름을 추출합니다.
// 형식 검증은 설정 로드 단계(validation.ValidateMongoURI)에서 이미 끝났다고 가정합니다.
// SRV 레코드 조회 등 네트워크 접근은 하지 않습니다.
func parseURI(uri string) (hosts []string, database string) {
	rest := uri
	if i := strings.Index(rest, "://"); i != -1 {
		rest = rest[i+len("://"):]
	}
	if at := strings.LastIndex(rest, "@"); at != -1 {
		rest = rest[at+1:]
	}
	if q := strings.Index(rest, "?"); q != -1 {
		rest = rest[:q]
	}

	hostPart, dbPart, _ := strings.Cut(rest, "/")
	for _, h := range strings.Split(hostPart, ",") {
		if h != "" {
			hosts = append(hosts, h)
		}
	}

	return hosts, dbPart
}

// resolveDatabaseName 설정값, 연결 문자열, 기본값 순서로 사용할 데이터베이스 이름을 결정합니다.
func resolveDatabaseName(configured, uri string) string {
	if configured != "" {
		return configured
	}
	if _, db := parseURI(uri); db != "" {
		return db
	}
	return defaultDatabaseName
}
