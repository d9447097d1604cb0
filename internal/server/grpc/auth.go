package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/token-queue/gen/go/tokenqueue/v1"
)

// ownerMethods require a valid owner bearer token.
var ownerMethods = map[string]bool{
	pb.Queue_SetupShop_FullMethodName:      true,
	pb.Queue_MyShop_FullMethodName:         true,
	pb.Queue_SetOpen_FullMethodName:        true,
	pb.Queue_AdvanceServing_FullMethodName: true,
}

// AuthUnary verifies the bearer token of owner methods and stores the owner ID in context.
func AuthUnary(signKey []byte) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !ownerMethods[info.FullMethod] {
			return next(ctx, req)
		}
		id, err := ownerIDFromMD(ctx, signKey)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return next(WithOwnerID(ctx, id), req)
	}
}

var ownerParser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithLeeway(30*time.Second),
	jwt.WithExpirationRequired(),
)

// ownerIDFromMD extracts "authorization: Bearer <JWT>", verifies HS256 and returns sub as UUID.
func ownerIDFromMD(ctx context.Context, signKey []byte) (uuid.UUID, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var claims jwt.RegisteredClaims
	if _, err := ownerParser.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) {
		return signKey, nil
	}); err != nil {
		return uuid.Nil, errors.New("invalid token")
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("bad subject")
	}
	return id, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			if t := strings.TrimSpace(v[7:]); t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}
