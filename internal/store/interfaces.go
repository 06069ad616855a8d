// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns the authoritative users collection.
//
// Two interchangeable backends implement [UserStore]: [MemoryStore], a map
// guarded by a single mutex, and [SQLStore], which runs every operation in
// its own transaction against PostgreSQL or SQLite.
// Both validate payloads before any mutation and report failures with the
// sentinel errors from errors.go.
package store

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_store_mock.go -package=mock

// UserStore is the backend-agnostic users contract.
type UserStore interface {
	// List returns every record keyed by its decimal id.
	List(ctx context.Context) (models.Users, error)
	// Get returns the record with the given id or [ErrNotFound].
	Get(ctx context.Context, id int64) (models.User, error)
	// Create validates fields, assigns the next id and stores the record.
	Create(ctx context.Context, fields models.UserFields) (models.User, error)
	// Update replaces every field of an existing record.
	Update(ctx context.Context, id int64, fields models.UserFields) (models.User, error)
	// Delete removes the record or returns [ErrNotFound].
	Delete(ctx context.Context, id int64) error
	// Ping reports whether the backend can serve requests.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation could
// succeed if attempted again. The stores never retry; the classification is
// logged for operators.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
