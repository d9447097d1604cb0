package feed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/and161185/token-queue/internal/model"
)

// Channel is the NOTIFY channel written by the shops trigger.
const Channel = "shop_updates"

// Conn is the part of a dedicated connection the listener needs.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
}

// Source hands out a dedicated connection and its release func.
type Source func(ctx context.Context) (Conn, func(), error)

type poolConn struct{ pc *pgxpool.Conn }

func (c poolConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return c.pc.Exec(ctx, sql, args...)
}

func (c poolConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return c.pc.Conn().WaitForNotification(ctx)
}

// PoolSource acquires listener connections from a pgx pool.
func PoolSource(p *pgxpool.Pool) Source {
	return func(ctx context.Context) (Conn, func(), error) {
		pc, err := p.Acquire(ctx)
		if err != nil {
			return nil, nil, err
		}
		return poolConn{pc: pc}, pc.Release, nil
	}
}

// Listener relays store notifications into a Hub.
type Listener struct {
	src      Source
	hub      *Hub
	log      *zap.Logger
	minDelay time.Duration
	maxDelay time.Duration
}

// NewListener constructs a listener with 500ms..30s reconnect backoff.
func NewListener(src Source, hub *Hub, log *zap.Logger) *Listener {
	return &Listener{src: src, hub: hub, log: log, minDelay: 500 * time.Millisecond, maxDelay: 30 * time.Second}
}

// errSessionEnded restarts the backoff after a session that reached LISTEN.
var errSessionEnded = errors.New("listen session ended")

// Run listens until ctx ends, reconnecting on failures. It returns ctx.Err().
func (l *Listener) Run(ctx context.Context) error {
	for {
		b := retry.WithCappedDuration(l.maxDelay, retry.NewExponential(l.minDelay))
		err := retry.Do(ctx, b, func(ctx context.Context) error {
			listened, err := l.session(ctx)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.log.Warn("feed connection lost", zap.Bool("listened", listened), zap.Error(err))
			if listened {
				return errSessionEnded
			}
			return retry.RetryableError(err)
		})
		if !errors.Is(err, errSessionEnded) {
			return err
		}
		// a session that dies right after LISTEN must not spin
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.minDelay):
		}
	}
}

// session runs one LISTEN connection; listened reports whether LISTEN succeeded.
func (l *Listener) session(ctx context.Context) (listened bool, err error) {
	conn, release, err := l.src(ctx)
	if err != nil {
		return false, err
	}
	defer release()

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return false, err
	}
	l.log.Info("feed listening", zap.String("channel", Channel))

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return true, err
		}
		if n.Channel != Channel {
			continue
		}
		var u model.ShopUpdate
		if err := json.Unmarshal([]byte(n.Payload), &u); err != nil {
			l.log.Warn("undecodable shop update", zap.String("payload", n.Payload), zap.Error(err))
			continue
		}
		l.hub.Apply(u)
	}
}
