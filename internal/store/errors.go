// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [UserStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrValidation is returned when a create or update payload lacks a
	// required field. The validator's field errors are wrapped alongside it.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("user not found")

	// ErrStore matches every [*StoreError].
	ErrStore = errors.New("store error")
)

// Low-level database operation errors. They are wrapped inside
// [StoreError.Err] to record which step failed.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrExecutingQuery is returned when a statement inside the transaction
	// fails, including scanning its result.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrUnsupportedDriver is returned when the configured database/sql
	// driver is neither PostgreSQL nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// StoreError is a backend fault: connection failure, constraint violation or
// any unexpected driver error.
//
// Error() only contains Op and Message, which are safe to show to API
// callers. The driver error, which may carry connection details, is kept in
// Err for logs.
type StoreError struct {
	// Op is the store operation that failed ("create", "list", ...).
	Op string
	// Code is the SQLSTATE reported by PostgreSQL, empty otherwise.
	Code string
	// Message is a client-safe description of the failure.
	Message string
	// Retryable reports the classification of the underlying error.
	Retryable bool
	// Err is the wrapped driver error.
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %s", e.Op, e.Message)
}

// Unwrap exposes both [ErrStore] and the driver error to [errors.Is] and
// [errors.As].
func (e *StoreError) Unwrap() []error {
	return []error{ErrStore, e.Err}
}
