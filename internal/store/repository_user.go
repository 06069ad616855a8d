// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

// SQLStore is the relational implementation of [UserStore].
//
// Every operation runs in its own transaction holding exactly one statement.
// The transaction is rolled back on any error, so a failed operation never
// leaves a partial write behind.
type SQLStore struct {
	db        *DB
	queries   userQueries
	validator validators.Validator
	logger    *logger.Logger
}

// NewSQLStore constructs a [SQLStore] on top of an open connection pool.
func NewSQLStore(db *DB, logger *logger.Logger) *SQLStore {
	logger.Debug().Str("driver", db.driver).Msg("creating sql user store")
	return &SQLStore{
		db:        db,
		queries:   newUserQueries(db.placeholderFormat()),
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

// List implements [UserStore].
func (s *SQLStore) List(ctx context.Context) (models.Users, error) {
	users := models.Users{}

	err := s.withTx(ctx, "list", func(tx *sql.Tx) error {
		query, args, err := s.queries.selectAll()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			user, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
			users.Put(user)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Get implements [UserStore].
func (s *SQLStore) Get(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	err := s.withTx(ctx, "get", func(tx *sql.Tx) error {
		query, args, err := s.queries.selectByID(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		user, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		return notFoundOrExecErr(err)
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Create implements [UserStore]. The id comes from the identity column.
func (s *SQLStore) Create(ctx context.Context, fields models.UserFields) (models.User, error) {
	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var created models.User

	err := s.withTx(ctx, "create", func(tx *sql.Tx) error {
		query, args, err := s.queries.insert(fields.ToUser(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		created, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*SQLStore.Create").
		Int64("user_id", created.ID).
		Msg("user created")

	return created, nil
}

// Update implements [UserStore].
func (s *SQLStore) Update(ctx context.Context, id int64, fields models.UserFields) (models.User, error) {
	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var updated models.User

	err := s.withTx(ctx, "update", func(tx *sql.Tx) error {
		query, args, err := s.queries.update(fields.ToUser(id))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		updated, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		return notFoundOrExecErr(err)
	})
	if err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// Delete implements [UserStore].
func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	return s.withTx(ctx, "delete", func(tx *sql.Tx) error {
		query, args, err := s.queries.delete(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

// Ping implements [UserStore] by pinging the database.
func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return s.storeError(ctx, "ping", err)
	}
	return nil
}

// withTx runs fn inside a transaction and commits when fn succeeds.
// [ErrNotFound] is returned as is; every other failure becomes a
// [*StoreError].
func (s *SQLStore) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.storeError(ctx, op, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return s.storeError(ctx, op, err)
	}

	if err = tx.Commit(); err != nil {
		return s.storeError(ctx, op, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return nil
}

func (s *SQLStore) storeError(ctx context.Context, op string, err error) *StoreError {
	message, code := describeError(err)
	retryable := s.db.errorClassificator.Classify(err) == Retryable

	logger.FromContext(ctx).Err(err).
		Str("func", "*SQLStore."+op).
		Str("code", code).
		Bool("retryable", retryable).
		Msg("database operation failed")

	return &StoreError{
		Op:        op,
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Err:       err,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row in [userColumns] order. games is stored as text.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user  models.User
		games string
	)
	if err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &games); err != nil {
		return models.User{}, err
	}
	user.Games = json.RawMessage(games)

	return user, nil
}

func notFoundOrExecErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
