// Package server はスタジオのセッションを JSON HTTP API として公開します。
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shouni/gemini-image-studio/pkg/auth"
	"github.com/shouni/gemini-image-studio/pkg/prompt"
	"github.com/shouni/gemini-image-studio/pkg/studio"
)

const shutdownTimeout = 10 * time.Second

// Server は chi ルーターとセッションストアを束ねます。
type Server struct {
	store    *studio.Store
	gate     auth.CredentialGate
	logger   *slog.Logger
	router   *chi.Mux
	enhMu    sync.Mutex
	enhancer *prompt.Enhancer
}

// New は Server を初期化してルートを登録します。
func New(store *studio.Store, gate auth.CredentialGate, enhancer *prompt.Enhancer, logger *slog.Logger) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if gate == nil {
		return nil, fmt.Errorf("gate is required")
	}
	if enhancer == nil {
		enhancer = prompt.NewEnhancer(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		store:    store,
		gate:     gate,
		logger:   logger,
		enhancer: enhancer,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", s.handleHealth)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", s.handleAuthStatus)
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
		})

		r.Route("/prompts", func(r chi.Router) {
			r.Post("/enhance", s.handleEnhance)
			r.Get("/restore", s.handleRestorePrompt)
			r.Get("/tips", s.handleTips)
		})

		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Put("/settings", s.handleSettings)
			r.Post("/generate", s.handleGenerate)
			r.Post("/undo", s.handleUndo)
			r.Post("/redo", s.handleRedo)
			r.Post("/edit-current", s.handleEditCurrent)
			r.Post("/new-image", s.handleNewImage)
			r.Post("/transform", s.handleTransform)
			r.Get("/export", s.handleExport)
		})
	})
	return r
}

// Handler はルーターを返します。
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe は ctx がキャンセルされるまで addr で待ち受けます。
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTPサーバーを起動します", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("HTTPサーバーを停止します")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.LogAttrs(r.Context(), slog.LevelInfo, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
