package postgres

import (
	"context"
	"time"

	"github.com/and161185/token-queue/internal/errs"
	"github.com/and161185/token-queue/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Unique constraints of the tokens table.
const (
	tokensSessionKey  = "tokens_pkey"
	tokensSequenceKey = "tokens_sequence_key"
)

// TokenLedger implements repository.TokenLedger using PostgreSQL.
type TokenLedger struct{ q querier }

// NewTokenLedger constructs a token ledger.
func NewTokenLedger(db *DB) *TokenLedger { return &TokenLedger{q: db.Pool} }

// HighestSequence returns MAX(sequence_number) for the shop/day or 0.
func (l *TokenLedger) HighestSequence(ctx context.Context, shopID uuid.UUID, day model.DateKey) (int64, error) {
	const q = `SELECT COALESCE(MAX(sequence_number),0) FROM tokens WHERE shop_id=$1 AND issue_date=$2::date`
	var v int64
	if err := l.q.QueryRow(ctx, q, shopID, string(day)).Scan(&v); err != nil {
		return 0, classify(err)
	}
	return v, nil
}

// FindBySession returns the token of a session for the shop/day.
func (l *TokenLedger) FindBySession(ctx context.Context, shopID uuid.UUID, day model.DateKey, sessionID string) (*model.Token, error) {
	const q = `
SELECT shop_id, issue_date, session_id, sequence_number, expired, created_at
FROM tokens WHERE shop_id=$1 AND issue_date=$2::date AND session_id=$3`
	var (
		t  model.Token
		dt time.Time
	)
	err := l.q.QueryRow(ctx, q, shopID, string(day), sessionID).
		Scan(&t.ShopID, &dt, &t.SessionID, &t.SequenceNumber, &t.Expired, &t.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err)
	}
	t.IssueDate = model.DateKey(dt.Format(model.DateLayout))
	return &t, nil
}

// Insert appends a token; both unique keys are enforced by the table.
func (l *TokenLedger) Insert(ctx context.Context, t *model.Token) error {
	const q = `
INSERT INTO tokens (shop_id, issue_date, session_id, sequence_number)
VALUES ($1, $2::date, $3, $4)`
	_, err := l.q.Exec(ctx, q, t.ShopID, string(t.IssueDate), t.SessionID, t.SequenceNumber)
	if name, ok := uniqueViolation(err); ok {
		if name == tokensSequenceKey {
			return errs.ErrSequenceTaken
		}
		return errs.ErrAlreadyExists
	}
	return classify(err)
}

// MarkExpiredBelow flags tokens below threshold and returns how many changed.
func (l *TokenLedger) MarkExpiredBelow(ctx context.Context, shopID uuid.UUID, day model.DateKey, threshold int64) (int64, error) {
	const q = `
UPDATE tokens SET expired=true
WHERE shop_id=$1 AND issue_date=$2::date AND sequence_number<$3 AND NOT expired`
	tag, err := l.q.Exec(ctx, q, shopID, string(day), threshold)
	if err != nil {
		return 0, classify(err)
	}
	return tag.RowsAffected(), nil
}
