// Package server exposes the badges over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/naka-gawa/github-badges/internal/usecase"
)

const (
	svgContentType  = "image/svg+xml"
	textContentType = "text/plain; charset=utf-8"

	serverErrorBody = "Server error"
	shutdownTimeout = 10 * time.Second
)

// ErrUsernameRequired is returned to clients that omit the username parameter.
var ErrUsernameRequired = errors.New("username is required")

// BadgeRenderer runs the pipeline for one badge.
type BadgeRenderer interface {
	RenderBadge(ctx context.Context, kind usecase.Kind, req usecase.BadgeRequest) ([]byte, error)
}

// Server serves one GET endpoint per badge type.
type Server struct {
	badges         BadgeRenderer
	logger         *zap.Logger
	requestTimeout time.Duration
	handler        http.Handler
}

// New creates a Server. A zero requestTimeout disables the per-request deadline.
func New(badges BadgeRenderer, logger *zap.Logger, requestTimeout time.Duration) *Server {
	s := &Server{
		badges:         badges,
		logger:         logger,
		requestTimeout: requestTimeout,
	}

	mux := http.NewServeMux()
	for _, kind := range usecase.Kinds() {
		mux.HandleFunc("GET /api/"+string(kind), s.badge(kind))
	}
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, "ok")
	})

	s.handler = s.recoverer(cors(mux))
	return s
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.requestTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func (s *Server) badge(kind usecase.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		username := q.Get("username")
		if username == "" {
			writeText(w, http.StatusBadRequest, ErrUsernameRequired.Error())
			return
		}

		ctx := r.Context()
		if s.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
			defer cancel()
		}

		svg, err := s.badges.RenderBadge(ctx, kind, usecase.BadgeRequest{
			Username: username,
			Theme:    q.Get("theme"),
			Year:     q.Get("year"),
		})
		if err != nil {
			s.logger.Error("Failed to render badge",
				zap.String("path", r.URL.Path),
				zap.String("username", username),
				zap.Error(err))
			writeText(w, http.StatusInternalServerError, serverErrorBody)
			return
		}

		w.Header().Set("Content-Type", svgContentType)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(svg); err != nil {
			s.logger.Debug("Failed to write response", zap.String("path", r.URL.Path), zap.Error(err))
		}
	}
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("Recovered from panic",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"))
				writeText(w, http.StatusInternalServerError, serverErrorBody)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// cors lets badges be fetched from any origin.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

// writeText writes body verbatim. http.Error would append a newline.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", textContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
