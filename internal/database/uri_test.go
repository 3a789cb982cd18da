package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		wantHosts []string
		wantDB    string
	}{
		{"단일 호스트", "mongodb://localhost:27017", []string{"localhost:27017"}, ""},
		{"데이터베이스 포함", "mongodb://localhost:27017/mern", []string{"localhost:27017"}, "mern"},
		{"자격 증명과 옵션", "mongodb://user:p@ss@db1:27017,db2:27018/app?replicaSet=rs0", []string{"db1:27017", "db2:27018"}, "app"},
		{"SRV", "mongodb+srv://user:pw@cluster0.example.net/prod?retryWrites=true", []string{"cluster0.example.net"}, "prod"},
		{"옵션만 존재", "mongodb://localhost/?authSource=admin", []string{"localhost"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hosts, db := parseURI(tt.uri)
			assert.Equal(t, tt.wantHosts, hosts)
			assert.Equal(t, tt.wantDB, db)
		})
	}
}

func TestResolveDatabaseName(t *testing.T) {
	assert.Equal(t, "configured", resolveDatabaseName("configured", "mongodb://localhost/fromuri"))
	assert.Equal(t, "fromuri", resolveDatabaseName("", "mongodb://localhost/fromuri"))
	assert.Equal(t, defaultDatabaseName, resolveDatabaseName("", "mongodb://localhost:27017"))
}
