// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
		{"wrapped pg error", fmt.Errorf("%w: %w", ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), Retryable},
		{"bad connection", driver.ErrBadConn, Retryable},
		{"connection done", sql.ErrConnDone, Retryable},
		{"plain error", errors.New("boom"), NonRetryable},
	}

	classifier := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	classifier := &SQLiteErrorClassifier{}

	assert.Equal(t, Retryable, classifier.Classify(sql.ErrConnDone))
	assert.Equal(t, NonRetryable, classifier.Classify(errors.New("UNIQUE constraint failed")))
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantCode    string
	}{
		{
			name:        "postgres error keeps server message",
			err:         &pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: `relation "users" does not exist`},
			wantMessage: `relation "users" does not exist`,
			wantCode:    pgerrcode.UndefinedTable,
		},
		{
			name:        "cancelled context",
			err:         fmt.Errorf("%w: %w", ErrBeginningTransaction, context.Canceled),
			wantMessage: msgRequestCancelled,
		},
		{
			name:        "deadline",
			err:         context.DeadlineExceeded,
			wantMessage: msgRequestCancelled,
		},
		{
			name:        "bad connection",
			err:         driver.ErrBadConn,
			wantMessage: msgDatabaseUnavailable,
		},
		{
			name:        "anything else is generic",
			err:         errors.New("dial tcp user=admin password=secret"),
			wantMessage: msgUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, code := describeError(tt.err)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
