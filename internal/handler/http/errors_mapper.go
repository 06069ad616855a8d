// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/store"
)

// errorResponses is checked in order, so more specific errors come first.
var errorResponses = []struct {
	target error
	status int
	text   string
}{
	{ErrMalformedID, http.StatusBadRequest, "Invalid ID"},
	{ErrMissingID, http.StatusBadRequest, "Missing ID"},
	{ErrMalformedBody, http.StatusBadRequest, "Invalid JSON was passed"},
	{store.ErrValidation, http.StatusBadRequest, "Missing fields"},
	{store.ErrNotFound, http.StatusNotFound, "User not found"},
}

// errorResponse returns the status code and plain-text body for err.
// Store faults expose only their client-safe message.
func errorResponse(err error) (int, string) {
	for _, response := range errorResponses {
		if errors.Is(err, response.target) {
			return response.status, response.text
		}
	}

	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return http.StatusInternalServerError, storeErr.Error()
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
