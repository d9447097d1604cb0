package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/token-queue/internal/errs"
)

// CodeTakenMessage is the user-facing text of a shop code collision.
const CodeTakenMessage = "code already taken, choose another code"

// toStatus maps domain errors to gRPC status errors. Precondition failures
// carry the reason category as their message.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, errs.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrPrecondition):
		if r, ok := errs.ReasonOf(err); ok {
			return status.Error(codes.FailedPrecondition, string(r))
		}
		return status.Error(codes.FailedPrecondition, "precondition failed")
	case errors.Is(err, errs.ErrConflict):
		return status.Error(codes.AlreadyExists, CodeTakenMessage)
	case errors.Is(err, errs.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "bad credentials")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	case errors.Is(err, errs.ErrTransient):
		return status.Error(codes.Unavailable, "store unavailable, retry later")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal")
	}
}
