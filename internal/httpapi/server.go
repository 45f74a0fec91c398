package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gowebdriver/webdriverd/internal/protocol"
)

// CommandHandler executes one decoded command. Implementations are the
// session/browser layer; this package only speaks the wire protocol.
type CommandHandler interface {
	HandleCommand(ctx context.Context, msg *protocol.Message) (*protocol.Response, error)
}

// Server is the WebDriver HTTP endpoint: it routes requests, decodes
// them into protocol messages, hands them to a CommandHandler and
// renders success and error envelopes.
type Server struct {
	router  *chi.Mux
	server  *http.Server
	handler CommandHandler
}

// NewServer creates the HTTP server with every WebDriver route
// registered.
func NewServer(port string, handler CommandHandler) *Server {
	router := chi.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s := &Server{
		router:  router,
		handler: handler,
	}

	for _, def := range routeDefs {
		router.Method(def.method, def.pattern, s.commandHandler(def))
	}

	// Unmatched paths and mismatched methods render through the error
	// taxonomy: same wire string, different HTTP status.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeWebDriverError(w, protocol.NewError(protocol.UnknownPath, "Unknown path "+r.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeWebDriverError(w, protocol.NewError(protocol.UnknownMethod,
			fmt.Sprintf("Method %s not allowed for %s", r.Method, r.URL.Path)))
	})

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Router exposes the handler chain, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// captureKeys are the URL params the decoder knows how to consume.
var captureKeys = []string{"sessionId", "elementId", "name", "propertyName"}

func capturesFromRequest(r *http.Request) protocol.Captures {
	captures := protocol.Captures{}
	for _, key := range captureKeys {
		if v := chi.URLParam(r, key); v != "" {
			captures[key] = v
		}
	}
	return captures
}

// commandHandler is the single generic handler behind every route:
// read body, decode, execute, render.
func (s *Server) commandHandler(def routeDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeWebDriverError(w, protocol.WrapError(err))
			return
		}

		msg, err := protocol.Decode(def.route, capturesFromRequest(r), string(body), def.requiresBody)
		if err != nil {
			writeWebDriverError(w, protocol.WrapError(err))
			return
		}

		resp, err := s.handler.HandleCommand(r.Context(), msg)
		if err != nil {
			writeWebDriverError(w, protocol.WrapError(err))
			return
		}

		writeJSON(w, http.StatusOK, resp.ToJSON())
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	slog.Info("starting HTTP server", "addr", s.server.Addr)

	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	slog.Info("HTTP server stopped")
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeWebDriverError(w http.ResponseWriter, wdErr *protocol.Error) {
	writeJSON(w, wdErr.HTTPStatus(), wdErr.ToJSON())
}
