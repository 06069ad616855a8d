// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the users API.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, panic recovery, request timeouts and response
// compression are handled in this package before requests reach the
// [store.UserStore].
package http
