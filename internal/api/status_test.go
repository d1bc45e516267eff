package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backend "tanim-backend/internal/api"
	"tanim-backend/pkg/api"
)

func getStatus(t *testing.T, router chi.Router, path string) (*httptest.ResponseRecorder, api.StatusResponse) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp api.StatusResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestRootEndpoint(t *testing.T) {
	router := createRouter(createDB(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Tanim AI Backend is running", resp.Message)
}

func TestHelloEndpoint(t *testing.T) {
	router := createRouter(createDB(t))

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hello from Tanim AI backend API!", resp.Message)
}

func TestStatusWithDatabase(t *testing.T) {
	router := createRouter(createDB(t))

	rec, resp := getStatus(t, router, "/test")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "running", resp.Backend)
	assert.Equal(t, "connected and working", resp.Database)
	assert.Equal(t, "connected", resp.ConnectionStatus)
	assert.Contains(t, resp.Collections, "messages")
	assert.Equal(t, "set", resp.DatabaseURL)
	assert.Equal(t, "set", resp.DatabaseName)
}

func TestStatusWithoutDatabaseStillSucceeds(t *testing.T) {
	router := chi.NewRouter()
	backend.NewStatusService(nil, "", "").AddRoutes(router)

	rec, resp := getStatus(t, router, "/test")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "running", resp.Backend)
	assert.Equal(t, "not available", resp.Database)
	assert.Equal(t, "not connected", resp.ConnectionStatus)
	assert.Empty(t, resp.Collections)
	assert.Equal(t, "not set", resp.DatabaseURL)
	assert.Equal(t, "not set", resp.DatabaseName)
}
