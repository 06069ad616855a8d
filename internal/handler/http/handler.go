// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

// Handler serves the users API on top of a [store.UserStore].
type Handler struct {
	store     store.UserStore
	buildInfo models.AppBuildInfo

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. cfg supplies the per-request timeout.
func NewHandler(userStore store.UserStore, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		store:          userStore,
		buildInfo:      buildInfo,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
