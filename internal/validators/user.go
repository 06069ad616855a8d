// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-api/models"
)

// requiredUserFields is validated when no explicit field list is given.
var requiredUserFields = []string{
	models.FieldFirstName,
	models.FieldLastName,
	models.FieldGames,
}

// UserValidator checks create and full-replace payloads.
type UserValidator struct{}

// NewUserValidator constructs a [UserValidator] as a [Validator].
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.UserFields or *models.UserFields. All missing
// fields are reported at once, joined into a single error.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserFields:
		return v.validateUserFields(value, fields...)
	case *models.UserFields:
		if value == nil {
			return v.validateUserFields(models.UserFields{}, fields...)
		}
		return v.validateUserFields(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateUserFields(user models.UserFields, fields ...string) error {
	if len(fields) == 0 {
		fields = requiredUserFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case models.FieldFirstName:
			if user.FirstName == nil {
				errs = append(errs, ErrMissingFirstName)
			}
		case models.FieldLastName:
			if user.LastName == nil {
				errs = append(errs, ErrMissingLastName)
			}
		case models.FieldGames:
			if len(user.Games) == 0 {
				errs = append(errs, ErrMissingGames)
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}

	return errors.Join(errs...)
}
