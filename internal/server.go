package internal

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"connectrpc.com/grpchealth"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/kazz187/aisa/internal/config"
	"github.com/kazz187/aisa/internal/orchestrator"
	"github.com/kazz187/aisa/internal/pushnotification"
	"github.com/kazz187/aisa/pkg/cerr"
	"github.com/kazz187/aisa/pkg/clog"
	"github.com/kazz187/aisa/proto/gen/go/aisa/v1/aisav1connect"
)

type Server struct {
	server                 *http.Server
	env                    *config.Env
	taskServer             *orchestrator.Server
	pushNotificationServer *pushnotification.Server
}

func NewServer(
	env *config.Env,
	taskServer *orchestrator.Server,
	pushNotificationServer *pushnotification.Server,
) *Server {
	return &Server{
		env:                    env,
		taskServer:             taskServer,
		pushNotificationServer: pushNotificationServer,
	}
}

// Handler builds the complete HTTP handler: the Connect services, the task
// API below /api, the artifact and legacy routes at the root, and the health
// checks.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		clog.SlogChiMiddleware(clog.WithTaskIDParam("id")),
		cerr.NewJSONResponseChiMiddleware(),
	)
	r.Route("/api", s.taskServer.Routes)
	s.taskServer.RootRoutes(r)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		cerr.SetNewJSONError(r.Context(), cerr.NotFound, "not found", nil)
	})

	handlerOpts := connect.WithHandlerOptions(
		connect.WithInterceptors(s.interceptors()...),
		connect.WithReadMaxBytes(orchestrator.MaxUploadBytes),
	)

	mux := http.NewServeMux()
	mux.Handle(aisav1connect.NewTaskServiceHandler(s.taskServer, handlerOpts))
	mux.Handle(aisav1connect.NewPushNotificationServiceHandler(s.pushNotificationServer, handlerOpts))
	mux.Handle("/health", &HealthChecker{})
	mux.Handle(grpchealth.NewHandler(grpchealth.NewStaticChecker()))
	mux.Handle("/", r)

	return h2c.NewHandler(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(s.apiKeyMiddleware(mux)), &http2.Server{})
}

// ListenAndServe starts the HTTP server. ctx becomes the base context of
// every request.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.env.HTTPHost, s.env.HTTPPort)
	slog.Info("starting server", "addr", addr)

	s.server = &http.Server{
		Addr:        addr,
		Handler:     s.Handler(),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) interceptors() []connect.Interceptor {
	return []connect.Interceptor{
		clog.NewSlogConnectInterceptor(clog.WithConnectFilter(clog.DefaultConnectHealthCheckUnaryFilter)),
		cerr.NewConvertConnectErrorInterceptor(),
	}
}

type HealthChecker struct{}

func (hc *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.env.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}
		// Skip API key check for health endpoints.
		if r.URL.Path == "/health" || r.URL.Path == "/grpc.health.v1.Health/Check" {
			next.ServeHTTP(w, r)
			return
		}
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			apiKey = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.env.APIKey)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
