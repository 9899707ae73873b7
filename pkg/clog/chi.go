package clog

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type chiConfig struct {
	Filter       func(r *http.Request) bool
	TaskIDParams []string
}

type ChiOption interface {
	apply(*chiConfig)
}

type chiOptionFunc func(*chiConfig)

func (o chiOptionFunc) apply(c *chiConfig) {
	o(c)
}

func WithChiFilter(filter func(r *http.Request) bool) ChiOption {
	return chiOptionFunc(func(cfg *chiConfig) {
		cfg.Filter = filter
	})
}

// WithTaskIDParam names a URL parameter that carries a task id. A matched
// route that binds it logs the value under task_id.
func WithTaskIDParam(name string) ChiOption {
	return chiOptionFunc(func(cfg *chiConfig) {
		cfg.TaskIDParams = append(cfg.TaskIDParams, name)
	})
}

// SlogChiMiddleware logs one line per request at a level derived from the
// response status. It must be installed on a chi router so that the route
// pattern is known once the request has been served.
func SlogChiMiddleware(opts ...ChiOption) func(http.Handler) http.Handler {
	cfg := chiConfig{}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := ContextWithSlog(r.Context())
			AddAttributes(ctx, map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"proto":  r.Proto,
			})
			next.ServeHTTP(ww, r.WithContext(ctx))
			if cfg.Filter != nil && !cfg.Filter(r) {
				return
			}
			AddAttributes(ctx, map[string]any{
				"status":        ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration":      time.Since(startTime),
			})
			if rctx := chi.RouteContext(ctx); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					AddAttribute(ctx, "route", pattern)
				}
				for _, name := range cfg.TaskIDParams {
					if id := rctx.URLParam(name); id != "" {
						AddAttribute(ctx, TaskIDAttributeKey, id)
						break
					}
				}
			}
			msg := http.StatusText(ww.Status())
			slog.Log(ctx, HTTPStatusToLevel(ww.Status()).SlogLevel(), msg)
		})
	}
}
