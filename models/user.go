// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// JSON keys of a user record. They are shared by the payload decoder, the
// validators and the SQL column list.
const (
	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldGames     = "games"
)

// User is a single record of the users collection.
//
// ID is assigned by the store and never changes afterwards. Games is an
// opaque JSON value that is stored and returned without interpretation.
type User struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Games     json.RawMessage `json:"games"`
}

// Clone returns a copy of u that shares no memory with it.
func (u User) Clone() User {
	u.Games = bytes.Clone(u.Games)
	return u
}

// UserFields is the body of a create or full-replace request.
//
// A nil field means the key was absent from the payload (or explicitly null);
// presence is what validation checks, the values themselves are not
// sanitized.
type UserFields struct {
	FirstName *string
	LastName  *string
	Games     json.RawMessage
}

// NewUserFields builds a fully populated payload.
func NewUserFields(firstName, lastName string, games json.RawMessage) UserFields {
	return UserFields{
		FirstName: &firstName,
		LastName:  &lastName,
		Games:     games,
	}
}

// ToUser materializes the payload as a record with the given id. Absent
// string fields become empty strings, so callers validate first.
func (f UserFields) ToUser(id int64) User {
	user := User{ID: id, Games: bytes.Clone(f.Games)}
	if f.FirstName != nil {
		user.FirstName = *f.FirstName
	}
	if f.LastName != nil {
		user.LastName = *f.LastName
	}
	return user
}

// UnmarshalJSON records which keys are present. first_name and last_name must
// be JSON strings when present; games may be any JSON value.
func (f *UserFields) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var decoded UserFields
	for _, field := range []struct {
		key string
		dst **string
	}{
		{FieldFirstName, &decoded.FirstName},
		{FieldLastName, &decoded.LastName},
	} {
		value, ok := presentField(raw, field.key)
		if !ok {
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return fmt.Errorf("%s must be a string: %w", field.key, err)
		}
		*field.dst = &s
	}

	if games, ok := presentField(raw, FieldGames); ok {
		decoded.Games = bytes.Clone(games)
	}

	*f = decoded
	return nil
}

// MarshalJSON writes only the present fields.
func (f UserFields) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3)
	if f.FirstName != nil {
		out[FieldFirstName] = *f.FirstName
	}
	if f.LastName != nil {
		out[FieldLastName] = *f.LastName
	}
	if f.Games != nil {
		out[FieldGames] = f.Games
	}
	return json.Marshal(out)
}

func presentField(raw map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	value, ok := raw[key]
	if !ok {
		return nil, false
	}
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return nil, false
	}
	return value, true
}

// Users is the full collection keyed by the decimal form of each id.
type Users map[string]User

// Put adds user under its id key.
func (u Users) Put(user User) {
	u[strconv.FormatInt(user.ID, 10)] = user
}
