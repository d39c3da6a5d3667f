package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/flow-nodes/internal/infra/http/handlers"
	"github.com/xavierca1/flow-nodes/internal/infra/http/middleware"
)

func testRouter() http.Handler {
	return newTestRouter(middleware.NewRateLimiter(100, time.Minute), false)
}

func newTestRouter(limiter *middleware.RateLimiter, trustProxy bool) http.Handler {
	return newRouter(routerDeps{
		Contacts:    handlers.NewContactHandler(nil, nil),
		MongoDB:     handlers.NewMongoDBHandler(),
		Validation:  handlers.NewValidationHandler(),
		Executions:  handlers.NewExecutionHandler(nil),
		Health:      handlers.NewHealthHandler(nil, nil, true),
		RateLimiter: limiter,
		TrustProxy:  trustProxy,
	})
}

func TestRouterRoutes(t *testing.T) {
	r := testRouter()

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPost, "/json/validate", `{"json":"[1]"}`, http.StatusOK},
		{http.MethodPost, "/mongodb/credentials/resolve", `{"host":"h","user":"u","password":"p"}`, http.StatusOK},
		{http.MethodPost, "/mongodb/items/project", `{"items":[],"fields":["a"]}`, http.StatusOK},
		{http.MethodPost, "/agilecrm/contacts/update/async", `{"body":{"id":1}}`, http.StatusServiceUnavailable},
		{http.MethodGet, "/agilecrm/contacts/update", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/executions/0b6c1f9e-3f1a-4d4e-9a55-6a1c2b3d4e5f", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestRouterForwardedForOnlyBehindTrustedProxy(t *testing.T) {
	send := func(r http.Handler, xff string) int {
		req := httptest.NewRequest(http.MethodPost, "/json/validate", bytes.NewBufferString(`{"json":"1"}`))
		req.RemoteAddr = "10.0.0.2:3000"
		req.Header.Set("X-Forwarded-For", xff)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	direct := newTestRouter(middleware.NewRateLimiter(1, time.Minute), false)
	assert.Equal(t, http.StatusOK, send(direct, "1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, send(direct, "2.2.2.2"))

	proxied := newTestRouter(middleware.NewRateLimiter(1, time.Minute), true)
	assert.Equal(t, http.StatusOK, send(proxied, "1.1.1.1"))
	assert.Equal(t, http.StatusOK, send(proxied, "2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, send(proxied, "1.1.1.1"))
}
