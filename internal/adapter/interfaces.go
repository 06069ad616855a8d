// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the users API.
//
// [ServerAdapter] decouples callers such as cmd/client from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// ServerAdapter mirrors the users API routes.
type ServerAdapter interface {
	// List returns every user keyed by decimal id.
	List(ctx context.Context) (models.Users, error)
	// Get returns a single user.
	Get(ctx context.Context, id int64) (models.User, error)
	// Create posts fields and returns the stored record.
	Create(ctx context.Context, fields models.UserFields) (models.User, error)
	// Update replaces the user with the given id.
	Update(ctx context.Context, id int64, fields models.UserFields) (models.User, error)
	// Delete removes the user with the given id.
	Delete(ctx context.Context, id int64) error
	// Version returns the build version reported by the server.
	Version(ctx context.Context) (string, error)
}
