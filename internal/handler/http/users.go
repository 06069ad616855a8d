// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

const deletedText = "User deleted"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.store.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error writing response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Msg("error writing response")
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	fields, err := decodeUserFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.store.Create(r.Context(), fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	log.Debug().Int64("user_id", user.ID).Msg("user created")

	if _, err = utils.WriteJSON(w, user, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error writing response")
	}
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	fields, err := decodeUserFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.store.Update(r.Context(), id, fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("error writing response")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.store.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(deletedText))
}

// missingUserID answers PUT and DELETE on the collection itself.
func (h *Handler) missingUserID(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrMissingID)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, text := errorResponse(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	http.Error(w, text, status)
}

func userIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, ErrMissingID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, raw)
	}

	return id, nil
}

func decodeUserFields(r *http.Request) (models.UserFields, error) {
	var fields models.UserFields
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&fields); err != nil {
		return models.UserFields{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	// the body must hold exactly one JSON value
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return models.UserFields{}, fmt.Errorf("%w: trailing data after object", ErrMalformedBody)
	}
	return fields, nil
}
