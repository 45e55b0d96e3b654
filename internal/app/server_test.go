package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teeup_backend/internal/auth"
	"teeup_backend/internal/booking"
	"teeup_backend/internal/config"
	"teeup_backend/internal/jobs"
	"teeup_backend/internal/page"
	"teeup_backend/internal/profile"
	"teeup_backend/internal/review"
	"teeup_backend/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	logger := zap.NewNop()

	store, err := profile.NewStore(profile.Catalog(), profile.DefaultSlug)
	require.NoError(t, err)
	bookings := booking.NewService(booking.NewLogSink(logger), logger)
	reviews, err := review.ProvideService(review.NewMemoryRepository(review.SeedApplications(), review.SeedApprovedPros()), cfg, logger)
	require.NoError(t, err)

	themes := theme.NewService(store, theme.NewMemoryRepository(), logger)

	var verifier auth.AdminVerifier
	srv, err := NewServer(cfg, logger,
		profile.NewHandler(store, profile.NewMemorySearcher(store), logger),
		booking.NewHandler(bookings, store, logger),
		review.NewHandler(reviews, logger),
		theme.NewHandler(themes, logger),
		page.NewHandler(store, bookings, themes, cfg, logger),
		verifier,
		jobs.NewApplicationDigestJob(reviews, logger, cfg),
		nil,
	)
	require.NoError(t, err)
	return srv
}

func testConfig() *config.Config {
	return &config.Config{
		GinMode:            gin.TestMode,
		ServerHost:         "127.0.0.1",
		ServerPort:         "0",
		DefaultProfileSlug: profile.DefaultSlug,
		CORSAllowedOrigins: []string{"*"},
	}
}

func serve(srv *Server, method, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Origin", "https://teeup.golf")
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	w := serve(newTestServer(t, testConfig()), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"UP"`)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_UnknownRouteEnvelope(t *testing.T) {
	w := serve(newTestServer(t, testConfig()), http.MethodGet, "/api/nowhere", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestServer_RoutesMounted(t *testing.T) {
	srv := newTestServer(t, testConfig())

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/api/profiles/hannah-park", "").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/profile/mina-jang", "").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/api/profiles/mina-jang/theme", "").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/api/themes/default", "").Code)
	assert.Equal(t, http.StatusAccepted, serve(srv, http.MethodPost, "/api/bookings",
		`{"type":"waitlist","proSlug":"elliot-kim","name":"김민수","phone":"010-1234-5678","agree":true}`).Code)
}

func TestServer_AdminRoutesNeedVerifier(t *testing.T) {
	srv := newTestServer(t, testConfig())
	assert.Equal(t, http.StatusServiceUnavailable, serve(srv, http.MethodGet, "/api/admin/applications", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(srv, http.MethodPut, "/api/admin/profiles/elliot-kim/theme", `{"fontPreset":"classic"}`).Code)
}

func TestServer_AdminAuthDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.AdminAuthDisabled = true
	srv := newTestServer(t, cfg)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/api/admin/applications", "").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodPut, "/api/admin/profiles/elliot-kim/theme", `{"fontPreset":"classic"}`).Code)
}

func TestServer_CredentialedCORS(t *testing.T) {
	cfg := testConfig()
	cfg.CORSAllowedOrigins = []string{"https://teeup.golf"}
	w := serve(newTestServer(t, cfg), http.MethodGet, "/health", "")
	assert.Equal(t, "https://teeup.golf", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
