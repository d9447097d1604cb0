package repository

import (
	"context"

	"github.com/and161185/token-queue/internal/model"
	"github.com/gofrs/uuid/v5"
)

// TokenLedger is the append-only per-day token record.
type TokenLedger interface {
	// HighestSequence returns the greatest sequence issued for the shop/day, 0 if none.
	HighestSequence(ctx context.Context, shopID uuid.UUID, day model.DateKey) (int64, error)
	// FindBySession returns the session's token for the shop/day.
	FindBySession(ctx context.Context, shopID uuid.UUID, day model.DateKey, sessionID string) (*model.Token, error)
	// Insert appends a token. A taken session key yields errs.ErrAlreadyExists,
	// a taken sequence number errs.ErrSequenceTaken.
	Insert(ctx context.Context, t *model.Token) error
	// MarkExpiredBelow flags all tokens with sequence < threshold as expired.
	MarkExpiredBelow(ctx context.Context, shopID uuid.UUID, day model.DateKey, threshold int64) (int64, error)
}
