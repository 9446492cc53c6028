package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charity-events/fundraiser-api/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	conf := &config.AppConfig{
		API: config.APIConfig{BaseURL: "localhost:8080"},
		Gin: config.GinConfig{Mode: gin.TestMode},
	}

	return NewServer(conf, Dependencies{})
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)

	routes := map[string]bool{}
	for _, r := range s.Router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /api/v1/events/upcoming",
		"GET /api/v1/dinners/:dinnerID/tables",
		"POST /api/v1/tables/:tableID/entries",
		"POST /api/v1/raffles/:raffleID/tickets",
		"GET /api/v1/walks/shirt-sizes",
		"POST /api/v1/walks/:walkID/bibs",
		"GET /api/v1/concerts/:concertID/seats",
		"POST /api/v1/concerts/:concertID/entries",
		"POST /api/v1/tickets/:reference/redeem",
		"GET /api/v1/events/:kind/:eventID/live",
		"GET /swagger/*any",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestServer_Healthcheck(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_ShirtSizesNeedNoDatabase(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/walks/shirt-sizes", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Extra Extra Large")
}
