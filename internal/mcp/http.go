package mcp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const sessionHeader = "Mcp-Session-Id"

// Handler builds the HTTP surface: a streamable-HTTP style MCP endpoint
// at the configured path plus plain-text liveness endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	path := s.cfg.MCPPath
	if strings.TrimSpace(path) == "" {
		path = "/mcp"
	}

	r.Post(path, s.handleHTTPMessage)
	r.Get(path, methodNotAllowed)
	r.Delete(path, methodNotAllowed)
	r.Get("/health", handleHealth)
	r.Get("/healthz", handleHealth)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	return r
}

// handleHTTPMessage processes one JSON-RPC message per POST body.
func (s *Server) handleHTTPMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSONRPC(w, errorResponse(nil, -32700, "parse error", err.Error()))
		return
	}

	started := time.Now()
	resp, shouldRespond := s.handle(r.Context(), req)
	s.recordRequest(r.Context(), req, resp, time.Since(started))

	if req.Method == "initialize" {
		session := strings.TrimSpace(r.Header.Get(sessionHeader))
		if session == "" {
			session = uuid.NewString()
		}
		w.Header().Set(sessionHeader, session)
	}

	if !shouldRespond {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	writeJSONRPC(w, resp)
}

func writeJSONRPC(w http.ResponseWriter, resp response) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("OK"))
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// ServeHTTP runs the HTTP transport until ctx is cancelled, then drains
// in-flight requests before returning.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
