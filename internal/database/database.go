package database

import (
	"fmt"

	"mvpduo/internal/config"
	"mvpduo/internal/logger"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DriverName is the database/sql driver registered by pgx's stdlib package.
const DriverName = "pgx"

// ParseURL validates a PostgreSQL connection URL.
func ParseURL(url string) (*pgx.ConnConfig, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is empty")
	}
	cfg, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}
	return cfg, nil
}

// NewSQLXDB opens a pooled sqlx handle over pgx and verifies it with a ping.
func NewSQLXDB(cfg config.DBConfig) (*sqlx.DB, error) {
	connCfg, err := ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(DriverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	logger.Get().Info("Connected to database",
		zap.String("host", connCfg.Host),
		zap.String("database", connCfg.Database))
	return db, nil
}
