// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

// Storages bundles the configured [UserStore] with the resources it owns.
type Storages struct {
	UserStore UserStore

	db *DB
}

// NewStorages builds the backend selected by cfg.Backend. For the database
// backend the connection is opened and pinged, and the users table is
// created first when cfg.DB.Migrate is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		return &Storages{UserStore: NewMemoryStore(log)}, nil

	case config.BackendDB:
		db, err := NewConnectDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		if cfg.DB.Migrate {
			if err = db.Migrate(); err != nil {
				log.Err(err).Str("func", "NewStorages").Msg("error migrating users table")
				db.Close()
				return nil, err
			}
		}

		return &Storages{UserStore: NewSQLStore(db, log), db: db}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
