package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rideshare/rides-api/internal/handler"
	"github.com/rideshare/rides-api/internal/handler/gen"
)

// fakePinger returns err from every Ping.
type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func getHealth(t *testing.T, db handler.Pinger) (*httptest.ResponseRecorder, gen.HealthResponse) {
	t.Helper()
	h := handler.NewHTTPHandler(handler.NewHealthHandler(db), nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body gen.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec, body
}

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"} when the database answers.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	rec, body := getHealth(t, fakePinger{})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", body.Status)
}

func TestGetHealth_noDatabaseConfigured(t *testing.T) {
	rec, body := getHealth(t, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", body.Status)
}

func TestGetHealth_databaseDown(t *testing.T) {
	rec, body := getHealth(t, fakePinger{err: errors.New("dial tcp: connection refused")})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "unavailable", body.Status)
}
