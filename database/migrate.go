package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"budgetapp/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations
var migrationsFS embed.FS

// 迁移方向
const (
	MigrateUp   = "up"
	MigrateDown = "down"
	MigrateNone = "none"
)

// Migrate 执行迁移
// up 迁移到最新版本，down 回退一个版本，none 什么都不做
func Migrate(cfg config.DatabaseConfig, direction string) error {
	if direction == MigrateNone || direction == "" {
		return nil
	}

	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Steps(-1)
	default:
		return fmt.Errorf("未知的迁移方向: %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("执行迁移失败: %w", err)
	}
	return nil
}

// MigrateTo 迁移到指定版本
func MigrateTo(cfg config.DatabaseConfig, version uint) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("迁移到版本 %d 失败: %w", version, err)
	}
	return nil
}

// Version 当前迁移版本，未迁移时返回 0
func Version(cfg config.DatabaseConfig) (uint, bool, error) {
	m, err := newMigrate(cfg)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// newMigrate 使用独立连接创建迁移实例，m.Close 会关闭这个连接
func newMigrate(cfg config.DatabaseConfig) (*migrate.Migrate, error) {
	var (
		sqlDriver string
		dsn       string
	)
	switch cfg.Driver {
	case config.DriverMySQL:
		sqlDriver, dsn = "mysql", MySQLDSN(cfg)+"&multiStatements=true"
	case config.DriverPostgres:
		sqlDriver, dsn = "pgx", PostgresDSN(cfg)
	case config.DriverSQLite:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		sqlDriver, dsn = "sqlite3", SQLiteDSN(cfg)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", cfg.Driver)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("打开迁移连接失败: %w", err)
	}

	var driver migratedb.Driver
	switch cfg.Driver {
	case config.DriverMySQL:
		driver, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	case config.DriverPostgres:
		driver, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	default:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("创建 %s 迁移驱动失败: %w", cfg.Driver, err)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+cfg.Driver)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("读取迁移文件失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Driver, driver)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("创建迁移实例失败: %w", err)
	}
	return m, nil
}
