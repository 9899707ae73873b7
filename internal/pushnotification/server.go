package pushnotification

import (
	"context"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/oklog/ulid/v2"

	"github.com/kazz187/aisa/internal/config"
	"github.com/kazz187/aisa/internal/pushsubscription"
	"github.com/kazz187/aisa/pkg/cerr"
	aisav1 "github.com/kazz187/aisa/proto/gen/go/aisa/v1"
	"github.com/kazz187/aisa/proto/gen/go/aisa/v1/aisav1connect"
)

var _ aisav1connect.PushNotificationServiceHandler = (*Server)(nil)

type Server struct {
	vapidEnv *config.VAPIDEnv
	repo     pushsubscription.Repository
	sender   *Sender
}

func NewServer(vapidEnv *config.VAPIDEnv, repo pushsubscription.Repository, sender *Sender) *Server {
	return &Server{
		vapidEnv: vapidEnv,
		repo:     repo,
		sender:   sender,
	}
}

func (s *Server) GetVapidPublicKey(_ context.Context, _ *connect.Request[aisav1.GetVapidPublicKeyRequest]) (*connect.Response[aisav1.GetVapidPublicKeyResponse], error) {
	if s.vapidEnv.VAPIDPublicKey == "" {
		return nil, cerr.NewError(cerr.FailedPrecondition, "VAPID keys not configured", nil).ConnectError()
	}
	return connect.NewResponse(&aisav1.GetVapidPublicKeyResponse{
		PublicKey: s.vapidEnv.VAPIDPublicKey,
	}), nil
}

// RegisterPushSubscription is idempotent per endpoint: registering a known
// endpoint again replaces its keys and keeps its id.
func (s *Server) RegisterPushSubscription(ctx context.Context, req *connect.Request[aisav1.RegisterPushSubscriptionRequest]) (*connect.Response[aisav1.RegisterPushSubscriptionResponse], error) {
	if err := cerr.Validate(req.Msg); err != nil {
		return nil, err
	}
	sub, err := s.repo.Upsert(ctx, &pushsubscription.Subscription{
		ID:        strings.ToLower(ulid.Make().String()),
		Endpoint:  req.Msg.Endpoint,
		P256dhKey: req.Msg.P256DhKey,
		AuthKey:   req.Msg.AuthKey,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&aisav1.RegisterPushSubscriptionResponse{Id: sub.ID}), nil
}

func (s *Server) UnregisterPushSubscription(ctx context.Context, req *connect.Request[aisav1.UnregisterPushSubscriptionRequest]) (*connect.Response[aisav1.UnregisterPushSubscriptionResponse], error) {
	if err := cerr.Validate(req.Msg); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteByEndpoint(ctx, req.Msg.Endpoint); err != nil {
		return nil, err
	}
	return connect.NewResponse(&aisav1.UnregisterPushSubscriptionResponse{}), nil
}

func (s *Server) SendTestNotification(ctx context.Context, _ *connect.Request[aisav1.SendTestNotificationRequest]) (*connect.Response[aisav1.SendTestNotificationResponse], error) {
	s.sender.SendToAll(ctx, &NotificationPayload{
		Title: "AISA Test",
		Body:  "Push notifications are working!",
	})
	return connect.NewResponse(&aisav1.SendTestNotificationResponse{}), nil
}
