// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation that must pass before any
// store mutation.
//
// Validators only check presence of required fields; values are not
// sanitized. Every store backend runs the same validator so the rules do not
// depend on where records are kept.
package validators

import "context"

// Validator validates an arbitrary input value. The optional field names
// restrict validation to a subset of fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
