// Package db opens and migrates the relational store behind Finex.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finex/backend/config"
	"github.com/finex/backend/internal/integration/persistence/model"
)

// Database wraps the GORM handle and the settings it was opened with.
type Database struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// GormConfig returns the GORM settings shared by every dialect.
// Foreign keys are not created so historical movements survive product and category deletion.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

const (
	connectPingTimeout = 5 * time.Second
	healthPingTimeout  = 2 * time.Second
)

// NewPostgresConnection opens the finex store at cfg.URL and applies the pool limits.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	conn, err := gorm.Open(postgres.Open(cfg.URL), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pool, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	database := NewDatabase(conn, cfg)
	if err := database.ping(connectPingTimeout); err != nil {
		return nil, fmt.Errorf("postgres unreachable: %w", err)
	}

	slog.Info("Finex store connected",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"auto_migrate", cfg.AutoMigrate,
	)
	return database, nil
}

// NewDatabase wraps an already opened connection.
func NewDatabase(conn *gorm.DB, cfg *config.DatabaseConfig) *Database {
	return &Database{db: conn, cfg: cfg}
}

// DB returns the underlying GORM handle.
func (d *Database) DB() *gorm.DB {
	return d.db
}

func (d *Database) ping(timeout time.Duration) error {
	pool, err := d.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return pool.PingContext(ctx)
}

// HealthCheck reports whether the store answers a ping.
func (d *Database) HealthCheck() bool {
	if err := d.ping(healthPingTimeout); err != nil {
		slog.Warn("Finex store health check failed", "error", err)
		return false
	}
	return true
}

// Close releases the connection pool.
func (d *Database) Close() error {
	pool, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("postgres pool: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	slog.Info("Finex store closed")
	return nil
}

// Migrate creates or updates operadores, categorias, produtos and movimentos.
// It is a no-op when auto-migration is disabled.
func (d *Database) Migrate() error {
	if d.cfg != nil && !d.cfg.AutoMigrate {
		slog.Info("Database auto-migration disabled")
		return nil
	}
	models := model.AllModels()
	if err := d.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate finex tables: %w", err)
	}
	slog.Info("Finex tables migrated", "tables", len(models))
	return nil
}
