// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	ErrMalformedID   = errors.New("malformed user id")
	ErrMissingID     = errors.New("user id is required")
	ErrMalformedBody = errors.New("malformed request body")
)
