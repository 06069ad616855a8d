// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

// MemoryStore keeps users in a process-local map.
//
// A single mutex is held for the whole of every operation, id assignment
// included, so operations are totally ordered and a record is never visible
// half written. Ids start at 1 and are never reused.
type MemoryStore struct {
	mu     sync.Mutex
	users  map[int64]models.User
	nextID int64

	validator validators.Validator
	logger    *logger.Logger
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore(logger *logger.Logger) *MemoryStore {
	logger.Debug().Msg("creating in-memory user store")
	return &MemoryStore{
		users:     make(map[int64]models.User),
		nextID:    1,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

// List implements [UserStore].
func (s *MemoryStore) List(ctx context.Context) (models.Users, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := make(models.Users, len(s.users))
	for _, user := range s.users {
		users.Put(user.Clone())
	}

	return users, nil
}

// Get implements [UserStore].
func (s *MemoryStore) Get(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}

	return user.Clone(), nil
}

// Create implements [UserStore].
func (s *MemoryStore) Create(ctx context.Context, fields models.UserFields) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	user := fields.ToUser(id)
	s.users[id] = user

	logger.FromContext(ctx).Debug().
		Str("func", "*MemoryStore.Create").
		Int64("user_id", id).
		Msg("user created")

	return user.Clone(), nil
}

// Update implements [UserStore]. The payload is validated before the lock
// is taken, so an invalid update never touches the stored record.
func (s *MemoryStore) Update(ctx context.Context, id int64, fields models.UserFields) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return models.User{}, ErrNotFound
	}

	user := fields.ToUser(id)
	s.users[id] = user

	return user.Clone(), nil
}

// Delete implements [UserStore].
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)

	return nil
}

// Ping implements [UserStore]. The in-memory store is always available.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
