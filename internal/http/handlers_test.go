package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thunderfc/clubsync/internal/changefeed"
	"github.com/thunderfc/clubsync/internal/config"
	"github.com/thunderfc/clubsync/internal/database"
	"github.com/thunderfc/clubsync/internal/logostore"
	"github.com/thunderfc/clubsync/internal/metrics"
	"github.com/thunderfc/clubsync/internal/notifier"
	"github.com/thunderfc/clubsync/internal/syncer"
	"github.com/thunderfc/clubsync/internal/team"
)

// setupTestServer initializes a new server against an in-memory database
// with an activated syncer.
func setupTestServer(t *testing.T) (*Server, *notifier.Mock, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	feed := changefeed.NewMock()
	teamStore := team.New(db, feed)
	notif := notifier.NewMock()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)

	logoDir := t.TempDir()
	logos, err := logostore.NewLocal(logoDir, "http://localhost:8080")
	require.NoError(t, err)

	cfg := config.Config{Port: "8080", Logo: config.LogoConfig{Dir: logoDir, MaxBytes: config.DefaultLogoMaxBytes}}

	sync := syncer.New(teamStore, feed, notif, metricsSvc, logos, cfg.Logo.MaxBytes)
	require.NoError(t, sync.Activate(context.Background()))

	server := NewServer(sync, metricsSvc, metricsHandler, cfg)
	teardown := func() {
		sync.Deactivate()
		dbTeardown()
	}
	return server, notif, teardown
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestSnapshotHandlerEmptyState(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/snapshot", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var snap syncer.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Players)
}

func TestAddPlayerRoundTrip(t *testing.T) {
	server, notif, teardown := setupTestServer(t)
	defer teardown()

	body := strings.NewReader(`{"name":"Marcus Johnson","position":"Forward"}`)
	req := httptest.NewRequest("POST", "/players", body)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, notif.Successes, "Player added successfully")

	// The write-through re-fetch means the next snapshot already has it.
	req = httptest.NewRequest("GET", "/snapshot", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	var snap syncer.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	require.Len(t, snap.Players, 1)
	assert.Equal(t, "Marcus Johnson", snap.Players[0].Name)
	assert.Equal(t, 1, snap.Stats.TotalPlayers)
}

func TestUpdateUnknownGameFails(t *testing.T) {
	server, notif, teardown := setupTestServer(t)
	defer teardown()

	body := strings.NewReader(`{"status":"completed","home_score":2,"away_score":2}`)
	req := httptest.NewRequest("PATCH", "/games/does-not-exist", body)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Failed to update game", notif.LastError())
}

func TestAddPlayerRejectsInvalidJSON(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("POST", "/players", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadLogoRejectsWrongType(t *testing.T) {
	server, notif, teardown := setupTestServer(t)
	defer teardown()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("logo", "logo.gif")
	require.NoError(t, err)
	_, err = part.Write([]byte("GIF89a"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/logo", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Failed to upload logo", notif.LastError())
}
