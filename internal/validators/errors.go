// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingFirstName = errors.New("first_name is required")
	ErrMissingLastName  = errors.New("last_name is required")
	ErrMissingGames     = errors.New("games is required")
)
