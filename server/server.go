package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"golang.org/x/time/rate"

	"github.com/umputun/repairbot/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/router.go -pkg mocks -skip-ensure -fmt goimports . MessageRouter
//go:generate moq -out mocks/managers.go -pkg mocks -skip-ensure -fmt goimports . PauseManager SettingsManager CatalogManager HistoryReader StatusProvider

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	router   MessageRouter
	pauses   PauseManager
	settings SettingsManager
	catalog  CatalogManager
	history  HistoryReader
	status   StatusProvider
	limiter  *senderLimiter
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	mux        *routegroup.Bundle
}

// MessageRouter processes inbound messages
type MessageRouter interface {
	Route(ctx context.Context, msg domain.InboundMessage) domain.Result
}

// PauseManager manages per-sender pauses and the global flag
type PauseManager interface {
	Pause(ctx context.Context, senderID string, days int) (domain.PauseRecord, error)
	Resume(ctx context.Context, senderID string) error
	ListPaused(ctx context.Context) ([]domain.PauseRecord, error)
	SetGlobalPause(ctx context.Context, paused bool) error
	IsGlobalPaused(ctx context.Context) (bool, error)
	Normalize(senderID string) string
}

// SettingsManager reads and changes the debug sender
type SettingsManager interface {
	DebugSender(ctx context.Context) (string, error)
	SetDebugSender(ctx context.Context, number string) error
}

// CatalogManager manages catalog items
type CatalogManager interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, name string) (domain.Item, error)
	AddItem(ctx context.Context, item *domain.Item) error
	UpdatePrice(ctx context.Context, name string, price float64) error
	UpdateStock(ctx context.Context, name string, stock *int) error
	RemoveItem(ctx context.Context, name string) error
}

// HistoryReader reads conversation history
type HistoryReader interface {
	RecentTurns(ctx context.Context, senderID string, limit int) ([]domain.Turn, error)
}

// StatusProvider reports the last known gateway connection state
type StatusProvider interface {
	ConnectionState() (state string, checkedAt time.Time)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAuthConfig() (user, password string)
	GetWebhookRate() (perSecond float64, burst int)
	GetRoutingTimeout() time.Duration
}

// Params for the server
type Params struct {
	Config   ConfigProvider
	Router   MessageRouter
	Pauses   PauseManager
	Settings SettingsManager
	Catalog  CatalogManager
	History  HistoryReader
	Status   StatusProvider // optional
	Version  string
	Debug    bool
}

// New initializes a new server instance
func New(params Params) *Server {
	perSecond, burst := params.Config.GetWebhookRate()
	s := &Server{
		config:   params.Config,
		router:   params.Router,
		pauses:   params.Pauses,
		settings: params.Settings,
		catalog:  params.Catalog,
		history:  params.History,
		status:   params.Status,
		limiter:  newSenderLimiter(rate.Limit(perSecond), burst),
		version:  params.Version,
		debug:    params.Debug,
		mux:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.mux,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      s.writeTimeout(timeout),
		IdleTimeout:       timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// writeTimeout covers the slowest webhook: the response is written after the message is routed
func (s *Server) writeTimeout(timeout time.Duration) time.Duration {
	return timeout + s.config.GetRoutingTimeout()
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.mux.Use(rest.AppInfo("repairbot", "umputun", s.version))
	s.mux.Use(rest.Ping)

	if s.debug {
		s.mux.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.mux.Use(rest.Recoverer(lgr.Default()))
	s.mux.Use(rest.Throttle(100))
	s.mux.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("POST /webhook", s.webhookHandler)

	s.mux.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		// management endpoints, protected when password is set
		r.Group().Route(func(m *routegroup.Bundle) {
			if user, passwd := s.config.GetAuthConfig(); passwd != "" {
				m.Use(rest.BasicAuth(func(u, p string) bool {
					return subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1 &&
						subtle.ConstantTimeCompare([]byte(p), []byte(passwd)) == 1
				}))
			}

			m.HandleFunc("GET /paused", s.listPausedHandler)
			m.HandleFunc("POST /paused", s.pauseHandler)
			m.HandleFunc("DELETE /paused/{number}", s.resumeHandler)

			m.HandleFunc("GET /global-pause", s.getGlobalPauseHandler)
			m.HandleFunc("PUT /global-pause", s.setGlobalPauseHandler)

			m.HandleFunc("GET /settings/debug", s.getDebugHandler)
			m.HandleFunc("PUT /settings/debug", s.setDebugHandler)

			m.HandleFunc("GET /items", s.listItemsHandler)
			m.HandleFunc("POST /items", s.addItemHandler)
			m.HandleFunc("PUT /items/{name}", s.updateItemHandler)
			m.HandleFunc("DELETE /items/{name}", s.removeItemHandler)

			m.HandleFunc("GET /history/{number}", s.historyHandler)

			m.HandleFunc("POST /test/message", s.testMessageHandler)
		})
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if s.status != nil {
		state, checkedAt := s.status.ConnectionState()
		if state == "" {
			state = "unknown"
		}
		status["whatsapp"] = state
		if !checkedAt.IsZero() {
			status["whatsapp_checked_at"] = checkedAt.UTC()
		}
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
