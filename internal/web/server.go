// Package web serves the typing test to a browser over a websocket.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/verte-zerg/minitype/internal/generator"
	"github.com/verte-zerg/minitype/internal/session"
)

const (
	maxMessageSize  = 64 * 1024
	shutdownTimeout = 5 * time.Second
)

//go:embed static/index.html
var indexHTML []byte

// Server hands every websocket connection its own session.
type Server struct {
	vocabulary []string
	words      int
	clock      session.Clock
	newGen     func() *generator.Generator
	logger     *log.Logger
	upgrader   websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for connection diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithClock overrides the session clock.
func WithClock(c session.Clock) Option {
	return func(s *Server) { s.clock = c }
}

// WithGenerator overrides how per-connection generators are built.
func WithGenerator(fn func() *generator.Generator) Option {
	return func(s *Server) { s.newGen = fn }
}

// NewServer returns a server drawing words words per session from vocabulary.
func NewServer(vocabulary []string, words int, opts ...Option) *Server {
	s := &Server{
		vocabulary: vocabulary,
		words:      words,
		clock:      session.SystemClock{},
		newGen:     generator.New,
		logger:     log.New(os.Stderr, "minitype: ", log.LstdFlags),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes: the page at "/" and the socket at "/ws".
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Printf("listening on %s", addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(indexHTML); err != nil {
		s.logger.Printf("failed to write index: %v", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ctrl, err := session.New(s.vocabulary, s.words, s.newGen(), s.clock)
	if err != nil {
		s.logger.Printf("failed to start session: %v", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade error: %v", err)
		return
	}
	s.serveConn(conn, ctrl)
}
