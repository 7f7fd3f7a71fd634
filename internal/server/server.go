// Package server is the HTTP presentation surface. It holds no expense
// data of its own: every handler reloads the record store, runs one
// interaction cycle, and saves back if the cycle mutated anything.
package server

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/spenso-dev/spenso/internal/config"
	"github.com/spenso-dev/spenso/internal/ledger"
	"github.com/spenso-dev/spenso/internal/session"
)

// Server serves the expense ledger API.
type Server struct {
	cfg     *config.Config
	service *ledger.Service
	logger  *slog.Logger

	// clearMu guards the per-session clear confirmation state, which is
	// the only state carried across requests.
	clearMu    sync.Mutex
	clearState session.ClearState
}

// New creates a Server.
func New(cfg *config.Config, service *ledger.Service, logger *slog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		service: service,
		logger:  logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if s.cfg.Server.Mode != "" {
		gin.SetMode(s.cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(s.logger))

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/expenses", s.handleListExpenses)
	api.POST("/expenses", s.handleCreateExpense)
	api.GET("/summary", s.handleSummary)
	api.GET("/categories", s.handleCategories)
	api.GET("/export", s.handleExport)
	api.POST("/clear", s.handleClear)

	return r
}

// Run starts the HTTP server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("server listening", "address", s.cfg.Server.Address)
	return s.Router().Run(s.cfg.Server.Address)
}

// requestClear advances the clear confirmation machine by one request.
func (s *Server) requestClear() (session.ClearState, bool) {
	s.clearMu.Lock()
	defer s.clearMu.Unlock()
	next, confirmed := session.RequestClear(s.clearState)
	s.clearState = next
	return next, confirmed
}

// touchClear resets a pending clear confirmation after any other
// mutating action.
func (s *Server) touchClear() {
	s.clearMu.Lock()
	defer s.clearMu.Unlock()
	s.clearState = session.Touch(s.clearState)
}
