package grpcserver

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// ownerKey carries the shop owner resolved from a bearer token. Only
// AuthUnary sets it, and only for owner methods; customer calls never hold one.
type ownerKey struct{}

// WithOwnerID marks ctx as acting for the shop owner id.
func WithOwnerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, id)
}

// OwnerIDFromCtx returns the shop owner a request acts for. The nil UUID
// counts as absent, so handlers can rely on ok alone.
func OwnerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
