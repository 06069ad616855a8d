// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

const adaBody = `{"first_name":"Ada","last_name":"Lovelace","games":["chess"]}`

func newMemoryRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(store.NewMemoryStore(logger.Nop()), models.NewAppBuildInfo("", "", ""), config.Server{}, logger.Nop())
	return h.Init()
}

func TestRoutes_CreateThenGet(t *testing.T) {
	router := newMemoryRouter(t)

	rr := serve(router, http.MethodPost, "/users", adaBody)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, `{"id":1,"first_name":"Ada","last_name":"Lovelace","games":["chess"]}`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"first_name":"Ada","last_name":"Lovelace","games":["chess"]}`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/users/99", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found\n", rr.Body.String())
}

func TestRoutes_InvalidUpdateLeavesRecord(t *testing.T) {
	router := newMemoryRouter(t)

	rr := serve(router, http.MethodPost, "/users", adaBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(router, http.MethodPut, "/users/1", `{"first_name":"Grace","last_name":"Hopper"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing fields\n", rr.Body.String())

	rr = serve(router, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"first_name":"Ada","last_name":"Lovelace","games":["chess"]}`, rr.Body.String())

	rr = serve(router, http.MethodPut, "/users/1", `{"first_name":"Grace","last_name":"Hopper","games":{"cobol":true}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"first_name":"Grace","last_name":"Hopper","games":{"cobol":true}}`, rr.Body.String())
}

func TestRoutes_UpdateUnknownUser(t *testing.T) {
	router := newMemoryRouter(t)

	rr := serve(router, http.MethodPut, "/users/7", adaBody)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// validation wins over the missing record
	rr = serve(router, http.MethodPut, "/users/7", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutes_DeleteTwice(t *testing.T) {
	router := newMemoryRouter(t)

	rr := serve(router, http.MethodPost, "/users", adaBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(router, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User deleted", rr.Body.String())

	rr = serve(router, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_ListAfterCreates(t *testing.T) {
	router := newMemoryRouter(t)

	rr := serve(router, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())

	for range 2 {
		rr = serve(router, http.MethodPost, "/users", adaBody)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr = serve(router, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var users map[string]models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users["2"].ID)
}

func TestRoutes_ConcurrentCreates(t *testing.T) {
	const n = 50

	server := httptest.NewServer(newMemoryRouter(t))
	defer server.Close()

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := http.Post(server.URL+"/users", "application/json", strings.NewReader(adaBody))
			if err != nil {
				t.Errorf("post: %v", err)
				return
			}
			defer resp.Body.Close()

			var user models.User
			if err = json.NewDecoder(resp.Body).Decode(&user); err != nil {
				t.Errorf("decode: %v", err)
				return
			}
			ids <- user.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d returned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
