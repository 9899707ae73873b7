package clog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/proto"
)

type connectConfig struct {
	Filter func(spec connect.Spec) bool
}

type ConnectOption interface {
	apply(*connectConfig)
}

type connectOptionFunc func(*connectConfig)

func (o connectOptionFunc) apply(c *connectConfig) {
	o(c)
}

func WithConnectFilter(filter func(connect.Spec) bool) ConnectOption {
	return connectOptionFunc(func(cfg *connectConfig) {
		cfg.Filter = filter
	})
}

func DefaultConnectHealthCheckUnaryFilter(spec connect.Spec) bool {
	return spec.Procedure != "/grpc.health.v1.Health/Check"
}

// taskScoped is implemented by request messages that address one task.
type taskScoped interface {
	GetSeqNo() string
}

// NewSlogConnectInterceptor logs one line per RPC at a level derived from the
// Connect code. Requests that name a task log its id under task_id.
func NewSlogConnectInterceptor(opts ...ConnectOption) connect.Interceptor {
	cfg := connectConfig{}
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return &slogConnectInterceptor{cfg: cfg}
}

type slogConnectInterceptor struct {
	cfg connectConfig
}

func (s *slogConnectInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		startTime := time.Now()
		newCtx := ContextWithSlog(ctx)

		AddAttributes(newCtx, map[string]any{
			"method":    req.HTTPMethod(),
			"procedure": req.Spec().Procedure,
		})
		if m, ok := req.Any().(taskScoped); ok && m.GetSeqNo() != "" {
			AddAttribute(newCtx, TaskIDAttributeKey, m.GetSeqNo())
		}
		resp, err := next(newCtx, req)
		if s.cfg.Filter != nil && !s.cfg.Filter(req.Spec()) {
			return resp, err
		}
		s.finish(newCtx, startTime, err)
		return resp, err
	}
}

func (s *slogConnectInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (s *slogConnectInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		startTime := time.Now()
		newCtx := ContextWithSlog(ctx)
		AddAttributes(newCtx, map[string]any{
			"procedure":   conn.Spec().Procedure,
			"stream_type": conn.Spec().StreamType.String(),
		})
		slog.InfoContext(newCtx, "Connected")

		err := next(newCtx, conn)
		if s.cfg.Filter != nil && !s.cfg.Filter(conn.Spec()) {
			return err
		}
		s.finish(newCtx, startTime, err)
		return err
	}
}

func (s *slogConnectInterceptor) finish(ctx context.Context, startTime time.Time, err error) {
	codeStr := "ok"
	var connectErr *connect.Error
	if err != nil {
		if !errors.As(err, &connectErr) {
			connectErr = connect.NewError(connect.CodeUnknown, err)
		}
		codeStr = connectErr.Code().String()
	}
	AddAttributes(ctx, map[string]any{
		"code":     codeStr,
		"duration": time.Since(startTime),
	})
	if connectErr == nil {
		slog.InfoContext(ctx, "Finished")
		return
	}
	logConnectError(ctx, connectErr)
}

func logConnectError(ctx context.Context, connectErr *connect.Error) {
	if errDetails := connectErr.Details(); len(errDetails) > 0 {
		details := make([]proto.Message, 0, len(errDetails))
		for _, detail := range errDetails {
			val, err := detail.Value()
			if err != nil {
				slog.ErrorContext(ctx, "failed to convert detail value", ErrorAttributeKey, err)
				continue
			}
			details = append(details, val)
		}
		AddAttribute(ctx, "err_details", details)
	}
	slog.Log(ctx, ConnectCodeToLevel(connectErr.Code()).SlogLevel(), connectErr.Message())
}
