package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pharmyrus/internal/config"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/prometheus"
	ihttp "github.com/turtacn/pharmyrus/internal/interfaces/http"
	"github.com/turtacn/pharmyrus/internal/interfaces/http/handlers"
	"github.com/turtacn/pharmyrus/internal/interfaces/http/middleware"
	"github.com/turtacn/pharmyrus/pkg/types/report"
)

type stubRunner struct{}

func (stubRunner) Run(context.Context, report.SearchRequest) (*report.SearchReport, error) {
	return &report.SearchReport{SearchID: "stub"}, nil
}

func newTestRouter() http.Handler {
	return ihttp.NewRouter(config.ServerConfig{Mode: "test"}, ihttp.RouterDeps{
		Search:    handlers.NewSearchHandler(stubRunner{}),
		Health:    handlers.NewHealthHandler(1),
		Collector: prometheus.NewCollector("pharmyrus_test"),
		Log:       logging.NewNopLogger(),
	})
}

func TestRouter_MountsAllRoutes(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/readyz", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPost, "/api/v1/search", `{"nome_molecula":"x"}`, http.StatusOK},
		{http.MethodPost, "/search", `{"nome_molecula":"x"}`, http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tc.method, tc.path, nil)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_RequestIDOnEveryResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_MetricsExposesNamespace(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
