package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeConn struct {
	notes   chan *pgconn.Notification
	failAt  error // returned by WaitForNotification once notes is closed
	execErr error
	execs   []string
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.execs = append(c.execs, sql)
	return pgconn.CommandTag{}, c.execErr
}

func (c *fakeConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	select {
	case n, ok := <-c.notes:
		if !ok {
			return nil, c.failAt
		}
		return n, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type fakeSource struct {
	mu       sync.Mutex
	conns    []*fakeConn
	dead     error // when set, every conn ends right after LISTEN with this error
	acquired int
	released int
	err      error
}

func (s *fakeSource) get(ctx context.Context) (Conn, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		err := s.err
		s.err = nil
		return nil, nil, err
	}
	var c *fakeConn
	if s.dead != nil {
		c = &fakeConn{notes: make(chan *pgconn.Notification), failAt: s.dead}
		close(c.notes)
	} else {
		c = s.conns[s.acquired]
	}
	s.acquired++
	return c, func() {
		s.mu.Lock()
		s.released++
		s.mu.Unlock()
	}, nil
}

func newTestListener(t *testing.T, src *fakeSource, hub *Hub) *Listener {
	l := NewListener(src.get, hub, zaptest.NewLogger(t))
	l.minDelay, l.maxDelay = time.Millisecond, 5*time.Millisecond
	return l
}

func TestListener_RelaysAndReconnects(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t), nil)
	id := uuid.Must(uuid.NewV4())
	ch, cancelSub := hub.Subscribe(id)
	defer cancelSub()

	first := &fakeConn{notes: make(chan *pgconn.Notification, 4), failAt: errors.New("conn reset")}
	second := &fakeConn{notes: make(chan *pgconn.Notification, 4)}
	src := &fakeSource{conns: []*fakeConn{first, second}, err: errors.New("pool exhausted")}

	first.notes <- &pgconn.Notification{Channel: "other", Payload: `{}`}
	first.notes <- &pgconn.Notification{Channel: Channel, Payload: `not json`}
	first.notes <- &pgconn.Notification{Channel: Channel, Payload: `{"shop_id":"` + id.String() + `","serving_number":2,"is_open":true}`}
	close(first.notes)
	second.notes <- &pgconn.Notification{Channel: Channel, Payload: `{"shop_id":"` + id.String() + `","code":"BAKERY","name":"Bakery","serving_number":3,"is_open":true}`}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestListener(t, src, hub).Run(ctx) }()

	got := recv(t, ch)
	if got.ServingNumber == 2 {
		got = recv(t, ch)
	}
	require.Equal(t, int64(3), got.ServingNumber)
	require.True(t, got.IsOpen)
	require.Equal(t, "BAKERY", got.Code)
	require.Equal(t, "Bakery", got.Name)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatalf("listener did not stop")
	}

	src.mu.Lock()
	defer src.mu.Unlock()
	require.Equal(t, 2, src.acquired)
	require.Equal(t, 2, src.released)
	require.Equal(t, []string{"LISTEN " + Channel}, first.execs)
	require.Equal(t, []string{"LISTEN " + Channel}, second.execs)
}

func TestListener_ListenFailureRetries(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t), nil)
	bad := &fakeConn{notes: make(chan *pgconn.Notification), execErr: errors.New("permission denied")}
	good := &fakeConn{notes: make(chan *pgconn.Notification)}
	src := &fakeSource{conns: []*fakeConn{bad, good}}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := newTestListener(t, src, hub).Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	src.mu.Lock()
	defer src.mu.Unlock()
	require.Equal(t, 2, src.acquired)
}

func TestListener_EndedSessionsBackOff(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t), nil)
	src := &fakeSource{dead: errors.New("terminating connection")}
	l := NewListener(src.get, hub, zaptest.NewLogger(t))
	l.minDelay, l.maxDelay = 20*time.Millisecond, 40*time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := l.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	src.mu.Lock()
	defer src.mu.Unlock()
	require.GreaterOrEqual(t, src.acquired, 2)
	require.LessOrEqual(t, src.acquired, 6)
	require.Equal(t, src.acquired, src.released)
}
