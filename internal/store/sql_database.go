// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/migrations"
)

// DB wraps the connection pool together with the dialect-specific helpers
// the SQL store needs.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens and pings a database/sql pool for cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver != config.DriverPostgres && cfg.Driver != config.DriverSQLite {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	// establish connection
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Str("driver", cfg.Driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	switch {
	case cfg.Driver == config.DriverSQLite:
		// every sqlite connection to ":memory:" is a separate database
		conn.SetMaxOpenConns(1)
	case cfg.MaxOpenConns > 0:
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectDB").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectDB").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return newDB(conn, cfg.Driver, log), nil
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		errorClassificator: newErrorClassifier(driver),
		logger:             log,
	}
}

// Migrate creates the users table when it does not exist yet.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func (db *DB) placeholderFormat() sq.PlaceholderFormat {
	if db.driver == config.DriverSQLite {
		return sq.Question
	}
	return sq.Dollar
}
