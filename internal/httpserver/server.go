package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fragment-cache/internal/cache/engine"
	"fragment-cache/internal/interfaces"
	"fragment-cache/internal/regions"
)

// Server fronts the fragment cache engine over HTTP
type Server struct {
	engine   *engine.Engine
	registry *regions.Registry
	renderer interfaces.Renderer
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a new fragment cache HTTP server
func NewServer(cacheEngine *engine.Engine, registry *regions.Registry, renderer interfaces.Renderer, logger *zap.Logger) *Server {
	return &Server{
		engine:   cacheEngine,
		registry: registry,
		renderer: renderer,
		logger:   logger,
	}
}

// Start starts the HTTP server on a TCP address
func (s *Server) Start(addr string) error {
	s.server = s.newHTTPServer()
	s.server.Addr = addr

	s.logger.Info("Starting fragment cache server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// StartUnixSocket starts the HTTP server on a Unix socket
func (s *Server) StartUnixSocket(socketPath string) error {
	// Remove existing socket file
	if err := os.RemoveAll(socketPath); err != nil {
		s.logger.Warn("Failed to remove existing socket file", zap.String("path", socketPath), zap.Error(err))
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return err
	}

	if err := os.Chmod(socketPath, 0660); err != nil {
		s.logger.Warn("Failed to set socket permissions", zap.String("path", socketPath), zap.Error(err))
	}

	s.server = s.newHTTPServer()

	s.logger.Info("Starting fragment cache server on Unix socket", zap.String("socket_path", socketPath))
	return s.server.Serve(listener)
}

// Stop stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping fragment cache server")
	return s.server.Shutdown(ctx)
}

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Handler:      s.createRouter(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// createRouter creates and configures the HTTP router
func (s *Server) createRouter() *mux.Router {
	router := mux.NewRouter()

	// Fragment endpoints
	router.HandleFunc("/fragments/{region}", s.handleRender).Methods("GET")
	router.HandleFunc("/fragments/{region}", s.handleInvalidate).Methods("DELETE")

	// Maintenance
	router.HandleFunc("/maintenance/sweep", s.handleSweep).Methods("POST")

	// Health check
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, map[string]interface{}{
		"status":  "healthy",
		"regions": s.registry.Names(),
		"time":    time.Now().UTC(),
	})
}

// writeResponse writes JSON response
func (s *Server) writeResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(&StatusResponse{Success: false, Error: message}); err != nil {
		s.logger.Error("Failed to write error response", zap.Error(err))
	}
}
