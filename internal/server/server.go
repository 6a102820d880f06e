package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/Thegreatvegan/Qura/internal/config"
	"github.com/Thegreatvegan/Qura/pkg/apperror"
	"github.com/Thegreatvegan/Qura/pkg/logger"
	"github.com/Thegreatvegan/Qura/web"
)

var Module = fx.Module("server",
	fx.Provide(
		NewRouter,
		func(r *chi.Mux) chi.Router { return r },
	),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *slog.Logger
}

// NewRouter creates the chi router with the middleware stack and static
// assets mounted. Page and API routes are added by the handlers module.
func NewRouter(p RouterParams) (*chi.Mux, error) {
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}
	return newRouter(p.Log, static), nil
}

func newRouter(log *slog.Logger, static fs.FS) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(log),
		middleware.Recoverer,
	)

	r.NotFound(apperror.NotFoundHandler)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteJSON(w, nil, apperror.New(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed"))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", StaticHandler(static)))

	return r
}

// StaticHandler serves embedded assets with a short cache lifetime.
func StaticHandler(static fs.FS) http.Handler {
	files := http.FileServer(http.FS(static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// quietPaths are polled by health checks and scrapers and not access-logged.
var quietPaths = []string{"/health", "/metrics", "/static/"}

// RequestLogger writes one slog line per request.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range quietPaths {
				if r.URL.Path == p || (strings.HasSuffix(p, "/") && strings.HasPrefix(r.URL.Path, p)) {
					next.ServeHTTP(w, r)
					return
				}
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
			} else {
				log.Info("request", attrs...)
			}
		})
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, r *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
