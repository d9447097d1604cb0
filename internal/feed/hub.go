// Package feed relays shop row changes to in-process subscribers.
package feed

import (
	"sync"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/token-queue/internal/metrics"
	"github.com/and161185/token-queue/internal/model"
)

// Hub keeps the latest known update per shop and fans changes out to subscribers.
// Each subscriber channel holds at most one pending update; a newer update
// replaces an unread one.
type Hub struct {
	mu     sync.Mutex
	latest map[uuid.UUID]model.ShopUpdate
	subs   map[uuid.UUID]map[chan model.ShopUpdate]struct{}

	log *zap.Logger
	m   *metrics.Metrics
}

// NewHub constructs an empty hub. m may be nil.
func NewHub(log *zap.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		latest: make(map[uuid.UUID]model.ShopUpdate),
		subs:   make(map[uuid.UUID]map[chan model.ShopUpdate]struct{}),
		log:    log,
		m:      m,
	}
}

// Apply records an incoming update. Subscribers are notified only when it
// differs from the latest known state of the shop; it reports whether it did.
func (h *Hub) Apply(u model.ShopUpdate) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev, ok := h.latest[u.ShopID]; ok && prev == u {
		return false
	}
	h.latest[u.ShopID] = u
	for ch := range h.subs[u.ShopID] {
		offer(ch, u)
	}
	return true
}

// Publish emits an update produced by a local write.
func (h *Hub) Publish(u model.ShopUpdate) {
	if h.Apply(u) {
		h.log.Debug("shop update published",
			zap.String("shop_id", u.ShopID.String()),
			zap.Int64("serving", u.ServingNumber),
			zap.Bool("open", u.IsOpen))
	}
}

// Subscribe registers interest in one shop. The returned cancel func is
// idempotent and closes the channel.
func (h *Hub) Subscribe(shopID uuid.UUID) (<-chan model.ShopUpdate, func()) {
	ch := make(chan model.ShopUpdate, 1)

	h.mu.Lock()
	set, ok := h.subs[shopID]
	if !ok {
		set = make(map[chan model.ShopUpdate]struct{})
		h.subs[shopID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()
	h.m.Subscribers(1)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[shopID], ch)
			if len(h.subs[shopID]) == 0 {
				delete(h.subs, shopID)
			}
			close(ch)
			h.mu.Unlock()
			h.m.Subscribers(-1)
		})
	}
	return ch, cancel
}

// offer replaces any unread value in ch with u. Callers hold h.mu, so h is
// the only sender and the second send never blocks.
func offer(ch chan model.ShopUpdate, u model.ShopUpdate) {
	select {
	case ch <- u:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- u
}
