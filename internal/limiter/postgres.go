package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Policy holds the sliding window parameters.
type Policy struct {
	Window   time.Duration // failures older than this start a new window
	MaxFails int
	BlockFor time.Duration
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PG is a limiter backed by the login_attempts table.
type PG struct {
	q      querier
	policy Policy
	now    func() time.Time
}

// NewPG constructs a PostgreSQL-backed limiter over a pool or a mock.
func NewPG(q querier, p Policy) *PG {
	return &PG{q: q, policy: p, now: time.Now}
}

// Allow reads blocked_until for k.
func (l *PG) Allow(ctx context.Context, k Key) (time.Duration, error) {
	const q = `SELECT blocked_until FROM login_attempts WHERE username=$1 AND peer_hash=$2`
	var until time.Time
	err := l.q.QueryRow(ctx, q, k.Username, k.PeerHash).Scan(&until)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, err
	}
	if d := until.Sub(l.now()); d > 0 {
		return d, nil
	}
	return 0, nil
}

// Success removes the row of k.
func (l *PG) Success(ctx context.Context, k Key) error {
	const q = `DELETE FROM login_attempts WHERE username=$1 AND peer_hash=$2`
	_, err := l.q.Exec(ctx, q, k.Username, k.PeerHash)
	return err
}

// Failure increments the failure counter, restarting the window when it has elapsed.
func (l *PG) Failure(ctx context.Context, k Key) (time.Duration, error) {
	const q = `
INSERT INTO login_attempts (username, peer_hash, fails, window_start)
VALUES ($1, $2, 1, $3)
ON CONFLICT (username, peer_hash) DO UPDATE SET
  fails = CASE WHEN login_attempts.window_start < $3 - $4 * interval '1 second'
               THEN 1 ELSE login_attempts.fails + 1 END,
  window_start = CASE WHEN login_attempts.window_start < $3 - $4 * interval '1 second'
               THEN $3 ELSE login_attempts.window_start END
RETURNING fails`
	now := l.now()
	var fails int
	if err := l.q.QueryRow(ctx, q, k.Username, k.PeerHash, now, int64(l.policy.Window/time.Second)).Scan(&fails); err != nil {
		return 0, err
	}
	if fails < l.policy.MaxFails {
		return 0, nil
	}
	const upd = `UPDATE login_attempts SET blocked_until=$3, fails=0 WHERE username=$1 AND peer_hash=$2`
	if _, err := l.q.Exec(ctx, upd, k.Username, k.PeerHash, now.Add(l.policy.BlockFor)); err != nil {
		return 0, err
	}
	return l.policy.BlockFor, nil
}
