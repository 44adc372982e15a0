// Package database 数据库工具单元测试
package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakib-007/hotel-reservation-system/internal/common/config"
)

func TestIsBusy(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sqlite busy", errors.New("SQLITE_BUSY: database is locked"), true},
		{"database is locked", errors.New("database is locked (5)"), true},
		{"table is locked", errors.New("database table is locked"), true},
		{"普通错误", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBusy(tt.err))
		})
	}
}

func TestDatabaseDSN_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:      "sqlite",
		Path:        "./data/hotel.db",
		BusyTimeout: 5000,
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "file:./data/hotel.db")
	assert.Contains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "_foreign_keys=on")
}

func TestInitAndMigrate_SQLiteMemory(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         ":memory:",
		BusyTimeout:  5000,
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}

	db, err := Init(cfg)
	require.NoError(t, err)
	defer Close()

	require.NoError(t, Migrate(db))

	// 迁移后核心表存在
	for _, table := range []string{"rooms", "customers", "reservations", "users"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
}
