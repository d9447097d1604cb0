package feed

import (
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/token-queue/internal/model"
)

func update(id uuid.UUID, serving int64, open bool) model.ShopUpdate {
	return model.ShopUpdate{ShopID: id, ServingNumber: serving, IsOpen: open}
}

func recv(t *testing.T, ch <-chan model.ShopUpdate) model.ShopUpdate {
	t.Helper()
	select {
	case u, ok := <-ch:
		require.True(t, ok, "channel closed")
		return u
	case <-time.After(time.Second):
		t.Fatalf("no update received")
	}
	return model.ShopUpdate{}
}

func TestHub_ApplyDeduplicates(t *testing.T) {
	h := NewHub(zaptest.NewLogger(t), nil)
	id := uuid.Must(uuid.NewV4())
	ch, cancel := h.Subscribe(id)
	defer cancel()

	require.True(t, h.Apply(update(id, 1, true)))
	require.Equal(t, update(id, 1, true), recv(t, ch))

	// at-least-once input: a repeat is not fanned out
	require.False(t, h.Apply(update(id, 1, true)))
	select {
	case u := <-ch:
		t.Fatalf("unexpected duplicate %+v", u)
	default:
	}

	// a rename alone is a change
	renamed := update(id, 1, true)
	renamed.Name = "Renamed"
	require.True(t, h.Apply(renamed))
	require.Equal(t, "Renamed", recv(t, ch).Name)
}

func TestHub_CoalescesLatestWins(t *testing.T) {
	h := NewHub(zaptest.NewLogger(t), nil)
	id := uuid.Must(uuid.NewV4())
	ch, cancel := h.Subscribe(id)
	defer cancel()

	h.Publish(update(id, 1, true))
	h.Publish(update(id, 2, true))
	h.Publish(update(id, 3, false))

	require.Equal(t, update(id, 3, false), recv(t, ch))
	select {
	case u := <-ch:
		t.Fatalf("stale update %+v left in channel", u)
	default:
	}
}

func TestHub_RoutesPerShop(t *testing.T) {
	h := NewHub(zaptest.NewLogger(t), nil)
	a, b := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	chA, cancelA := h.Subscribe(a)
	defer cancelA()
	chB, cancelB := h.Subscribe(b)
	defer cancelB()

	h.Apply(update(a, 5, true))
	require.Equal(t, int64(5), recv(t, chA).ServingNumber)
	select {
	case u := <-chB:
		t.Fatalf("shop b got %+v", u)
	default:
	}
}

func TestHub_CancelClosesAndIsIdempotent(t *testing.T) {
	h := NewHub(zaptest.NewLogger(t), nil)
	id := uuid.Must(uuid.NewV4())
	ch, cancel := h.Subscribe(id)

	cancel()
	cancel()
	_, ok := <-ch
	require.False(t, ok)

	// applying after cancel must not panic on the closed channel
	require.True(t, h.Apply(update(id, 1, false)))
}

func TestHub_ConcurrentApplyAndSubscribe(t *testing.T) {
	h := NewHub(zaptest.NewLogger(t), nil)
	id := uuid.Must(uuid.NewV4())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int64) {
			defer wg.Done()
			h.Apply(update(id, n, true))
		}(int64(i))
		go func() {
			defer wg.Done()
			_, cancel := h.Subscribe(id)
			cancel()
		}()
	}
	wg.Wait()

	ch, cancel := h.Subscribe(id)
	defer cancel()
	require.True(t, h.Apply(update(id, 100, true)))
	require.Equal(t, int64(100), recv(t, ch).ServingNumber)
}
