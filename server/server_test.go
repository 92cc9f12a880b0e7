package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/server/mocks"
)

type testDeps struct {
	config   *mocks.ConfigProviderMock
	router   *mocks.MessageRouterMock
	pauses   *mocks.PauseManagerMock
	settings *mocks.SettingsManagerMock
	catalog  *mocks.CatalogManagerMock
	history  *mocks.HistoryReaderMock
	status   *mocks.StatusProviderMock
}

func newTestDeps() *testDeps {
	return &testDeps{
		config: &mocks.ConfigProviderMock{
			GetServerConfigFunc:   func() (string, time.Duration) { return ":8080", 30 * time.Second },
			GetAuthConfigFunc:     func() (string, string) { return "admin", "" },
			GetWebhookRateFunc:    func() (float64, int) { return 1, 5 },
			GetRoutingTimeoutFunc: func() time.Duration { return 3 * time.Minute },
		},
		router: &mocks.MessageRouterMock{RouteFunc: func(context.Context, domain.InboundMessage) domain.Result {
			return domain.Result{Success: true, Action: domain.ActionGreetingSent}
		}},
		pauses: &mocks.PauseManagerMock{NormalizeFunc: func(s string) string {
			return strings.Map(func(r rune) rune {
				if r >= '0' && r <= '9' {
					return r
				}
				return -1
			}, s)
		}},
		settings: &mocks.SettingsManagerMock{},
		catalog:  &mocks.CatalogManagerMock{},
		history:  &mocks.HistoryReaderMock{},
		status: &mocks.StatusProviderMock{ConnectionStateFunc: func() (string, time.Time) {
			return "open", time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		}},
	}
}

func (d *testDeps) server() *Server {
	return New(Params{
		Config:   d.config,
		Router:   d.router,
		Pauses:   d.pauses,
		Settings: d.settings,
		Catalog:  d.catalog,
		History:  d.history,
		Status:   d.status,
		Version:  "test",
	})
}

// do sends a request through the full middleware chain
func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_New(t *testing.T) {
	srv := newTestDeps().server()
	assert.NotNil(t, srv)
	assert.Equal(t, "test", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.limiter)
}

func TestServer_Status(t *testing.T) {
	d := newTestDeps()
	rec := do(t, d.server(), http.MethodGet, "/api/v1/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "repairbot", rec.Header().Get("App-Name"))

	resp := decode[map[string]any](t, rec)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "test", resp["version"])
	assert.Equal(t, "open", resp["whatsapp"])
	assert.Equal(t, "2025-06-10T12:00:00Z", resp["whatsapp_checked_at"])

	d.status.ConnectionStateFunc = func() (string, time.Time) { return "", time.Time{} }
	resp = decode[map[string]any](t, do(t, d.server(), http.MethodGet, "/api/v1/status", ""))
	assert.Equal(t, "unknown", resp["whatsapp"])
	assert.NotContains(t, resp, "whatsapp_checked_at")
}

func TestServer_Ping(t *testing.T) {
	rec := do(t, newTestDeps().server(), http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_BasicAuth(t *testing.T) {
	d := newTestDeps()
	d.config.GetAuthConfigFunc = func() (string, string) { return "admin", "secret" }
	d.pauses.IsGlobalPausedFunc = func(context.Context) (bool, error) { return false, nil }
	srv := d.server()

	rec := do(t, srv, http.MethodGet, "/api/v1/global-pause", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "no credentials")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/global-pause", http.NoBody)
	req.SetBasicAuth("admin", "wrong")
	rec = httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code, "wrong credentials")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/global-pause", http.NoBody)
	req.SetBasicAuth("admin", "secret")
	rec = httptest.NewRecorder()
	srv.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// status and webhook stay open
	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodGet, "/api/v1/status", "").Code)
	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/webhook", `{"event":"presence.update"}`).Code)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	d := newTestDeps()
	d.config.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}
	srv := d.server()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, time.Second, 20*time.Millisecond)

	srv.lock.Lock()
	assert.Equal(t, 30*time.Second+3*time.Minute, srv.httpServer.WriteTimeout, "response waits for routing")
	srv.lock.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_WriteTimeoutCoversRouting(t *testing.T) {
	d := newTestDeps()
	d.config.GetRoutingTimeoutFunc = func() time.Duration { return 4 * 45 * time.Second }
	srv := d.server()
	assert.Equal(t, 30*time.Second+180*time.Second, srv.writeTimeout(30*time.Second))
	assert.Greater(t, srv.writeTimeout(30*time.Second), 4*45*time.Second)
}

func TestRenderError(t *testing.T) {
	rec := httptest.NewRecorder()
	RenderError(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, rec.Body.String())
}
