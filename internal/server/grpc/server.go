// Package grpcserver exposes the token queue gRPC API handlers.
package grpcserver

import (
	"context"
	"net"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/token-queue/gen/go/tokenqueue/v1"
	"github.com/and161185/token-queue/internal/convert"
	"github.com/and161185/token-queue/internal/model"
	"github.com/and161185/token-queue/internal/service"
)

// DefaultWatchRefresh is how often an idle Watch stream re-derives the queue
// status, so the day boundary reaches subscribers without a row change.
const DefaultWatchRefresh = time.Minute

// Feed delivers change notifications per shop.
type Feed interface {
	Subscribe(shopID uuid.UUID) (<-chan model.ShopUpdate, func())
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedQueueServer
	auth    service.AuthService
	queue   service.QueueService
	feed    Feed
	refresh time.Duration
	log     *zap.Logger
}

// Option tunes a Server.
type Option func(*Server)

// WithWatchRefresh overrides DefaultWatchRefresh.
func WithWatchRefresh(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.refresh = d
		}
	}
}

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, queue service.QueueService, feed Feed, log *zap.Logger, opts ...Option) *Server {
	s := &Server{auth: auth, queue: queue, feed: feed, refresh: DefaultWatchRefresh, log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

// --- Owners ---

// Register creates a new owner account.
func (s *Server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if req.GetUsername() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty username/password")
	}
	ownerID, err := s.auth.Register(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RegisterResponse{OwnerId: ownerID}, nil
}

// remoteIP returns the peer host without its port.
func remoteIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// Login authenticates an owner and returns an access token.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tok, o, err := s.auth.LoginWithIP(ctx, req.GetUsername(), req.GetPassword(), remoteIP(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToWireLogin(tok, o), nil
}

// SetupShop creates or edits the caller's shop.
func (s *Server) SetupShop(ctx context.Context, req *pb.SetupShopRequest) (*pb.ShopState, error) {
	ownerID, ok := OwnerIDFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	st, err := s.queue.SetupShop(ctx, ownerID, req.GetCode(), req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToWireShopState(st), nil
}

// MyShop returns the caller's shop.
func (s *Server) MyShop(ctx context.Context, _ *pb.MyShopRequest) (*pb.ShopState, error) {
	ownerID, ok := OwnerIDFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	st, err := s.queue.OwnerShop(ctx, ownerID)
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToWireShopState(st), nil
}

// SetOpen flips the owner gate of the caller's shop.
func (s *Server) SetOpen(ctx context.Context, req *pb.SetOpenRequest) (*pb.ShopState, error) {
	ownerID, ok := OwnerIDFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	st, err := s.queue.SetOpen(ctx, ownerID, req.GetOpen())
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToWireShopState(st), nil
}

// AdvanceServing calls the next number.
func (s *Server) AdvanceServing(ctx context.Context, _ *pb.AdvanceServingRequest) (*pb.ShopState, error) {
	ownerID, ok := OwnerIDFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	st, err := s.queue.AdvanceServing(ctx, ownerID)
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToWireShopState(st), nil
}

// --- Customers ---

// LookupShop resolves a shop code.
func (s *Server) LookupShop(ctx context.Context, req *pb.LookupShopRequest) (*pb.ShopState, error) {
	st, err := s.queue.LookupByCode(ctx, req.GetCode())
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToWireShopState(st), nil
}

// IssueToken takes a number for the calling session.
func (s *Server) IssueToken(ctx context.Context, req *pb.IssueTokenRequest) (*pb.IssueTokenResponse, error) {
	res, err := s.queue.IssueToken(ctx, req.GetCode(), req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToWireIssueResult(res), nil
}

// MyToken reports the session's token against the serving counter.
func (s *Server) MyToken(ctx context.Context, req *pb.MyTokenRequest) (*pb.MyTokenResponse, error) {
	ts, err := s.queue.MyToken(ctx, req.GetCode(), req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToWireTokenState(ts), nil
}

// Watch streams shop state: a snapshot first, then every change. Updates are
// coalesced, so a slow reader sees the latest state rather than every step.
func (s *Server) Watch(req *pb.WatchRequest, stream grpc.ServerStreamingServer[pb.ShopState]) error {
	ctx := stream.Context()

	st, err := s.queue.LookupByCode(ctx, req.GetCode())
	if err != nil {
		return toStatus(err)
	}
	updates, cancel := s.feed.Subscribe(st.Shop.ID)
	defer cancel()

	// re-read after subscribing so no change between lookup and subscribe is lost
	var last *pb.ShopState
	send := func() error {
		cur, err := s.queue.LookupByID(ctx, st.Shop.ID)
		if err != nil {
			return toStatus(err)
		}
		msg := convert.ToWireShopState(cur)
		if last != nil && proto.Equal(msg, last) {
			return nil
		}
		if err := stream.Send(msg); err != nil {
			return err
		}
		last = msg
		return nil
	}
	if err := send(); err != nil {
		return err
	}

	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-updates:
			if !ok {
				return status.Error(codes.Unavailable, "feed closed")
			}
		case <-ticker.C:
		}
		if err := send(); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.Debug("watch ended", zap.String("shop", st.Shop.Code), zap.Error(err))
			return err
		}
	}
}
