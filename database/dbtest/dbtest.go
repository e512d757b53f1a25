// Package dbtest 为测试提供已迁移的 SQLite 数据库
package dbtest

import (
	"path/filepath"
	"testing"

	"budgetapp/config"
	"budgetapp/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config 返回临时目录下的 SQLite 配置
func Config(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "budget_test.db"),
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}
}

// New 创建迁移到最新版本的测试数据库，测试结束后自动关闭
func New(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := Config(t)

	require.NoError(t, database.Migrate(cfg, database.MigrateUp))

	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
