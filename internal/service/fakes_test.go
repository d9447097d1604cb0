package service

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/token-queue/internal/errs"
	"github.com/and161185/token-queue/internal/model"
	"github.com/and161185/token-queue/internal/repository"
)

/************ shops ************/

type fakeShops struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*model.Shop

	getErr     error
	updateErr  error
	resetErr   error
	advanceErr error

	resets  int
	updates int
}

var _ repository.ShopRepository = (*fakeShops)(nil)

func newFakeShops() *fakeShops { return &fakeShops{byID: map[uuid.UUID]*model.Shop{}} }

func (f *fakeShops) put(s model.Shop) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[s.ID] = &s
}

func (f *fakeShops) get(id uuid.UUID) model.Shop {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.byID[id]
}

func (f *fakeShops) codeTakenLocked(id uuid.UUID, code string) bool {
	for _, s := range f.byID {
		if s.ID != id && s.Code == code {
			return true
		}
	}
	return false
}

func (f *fakeShops) Create(_ context.Context, s *model.Shop) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cur := range f.byID {
		if cur.OwnerID == s.OwnerID {
			return errs.ErrAlreadyExists
		}
	}
	if f.codeTakenLocked(s.ID, s.Code) {
		return errs.ErrConflict
	}
	c := *s
	f.byID[s.ID] = &c
	return nil
}

func (f *fakeShops) find(match func(*model.Shop) bool) (*model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, s := range f.byID {
		if match(s) {
			c := *s
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeShops) GetByID(_ context.Context, id uuid.UUID) (*model.Shop, error) {
	return f.find(func(s *model.Shop) bool { return s.ID == id })
}

func (f *fakeShops) GetByCode(_ context.Context, code string) (*model.Shop, error) {
	return f.find(func(s *model.Shop) bool { return s.Code == code })
}

func (f *fakeShops) GetByOwner(_ context.Context, ownerID uuid.UUID) (*model.Shop, error) {
	return f.find(func(s *model.Shop) bool { return s.OwnerID == ownerID })
}

func (f *fakeShops) Update(_ context.Context, id uuid.UUID, p model.ShopPatch) (*model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if p.Code != nil && f.codeTakenLocked(id, *p.Code) {
		return nil, errs.ErrConflict
	}
	f.updates++
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.IsOpen != nil {
		s.IsOpen = *p.IsOpen
	}
	c := *s
	return &c, nil
}

func (f *fakeShops) ResetIfStale(_ context.Context, id uuid.UUID, today model.DateKey) (*model.Shop, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resetErr != nil {
		return nil, false, f.resetErr
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, false, errs.ErrNotFound
	}
	did := false
	if s.LastResetDate != today {
		s.ServingNumber, s.LastResetDate, s.IsOpen = 0, today, false
		f.resets++
		did = true
	}
	c := *s
	return &c, did, nil
}

func (f *fakeShops) AdvanceServing(_ context.Context, id uuid.UUID, today model.DateKey) (*model.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.advanceErr != nil {
		return nil, f.advanceErr
	}
	s, ok := f.byID[id]
	if !ok || s.LastResetDate != today {
		return nil, errs.ErrNotFound
	}
	s.ServingNumber++
	c := *s
	return &c, nil
}

/************ ledger ************/

type tokenKey struct {
	shop    uuid.UUID
	day     model.DateKey
	session string
}

type fakeLedger struct {
	mu     sync.Mutex
	tokens map[tokenKey]*model.Token

	highErr   error
	findErr   error
	markErr   error
	insertErr error

	// beforeInsert runs without the lock held, to simulate a competing writer.
	beforeInsert func(t *model.Token)
	inserts      int
}

var _ repository.TokenLedger = (*fakeLedger)(nil)

func newFakeLedger() *fakeLedger { return &fakeLedger{tokens: map[tokenKey]*model.Token{}} }

func (f *fakeLedger) add(t model.Token) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[tokenKey{t.ShopID, t.IssueDate, t.SessionID}] = &t
}

func (f *fakeLedger) token(shop uuid.UUID, day model.DateKey, session string) model.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.tokens[tokenKey{shop, day, session}]
}

func (f *fakeLedger) count(shop uuid.UUID, day model.DateKey) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for k := range f.tokens {
		if k.shop == shop && k.day == day {
			n++
		}
	}
	return n
}

func (f *fakeLedger) HighestSequence(_ context.Context, shop uuid.UUID, day model.DateKey) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.highErr != nil {
		return 0, f.highErr
	}
	var high int64
	for k, t := range f.tokens {
		if k.shop == shop && k.day == day && t.SequenceNumber > high {
			high = t.SequenceNumber
		}
	}
	return high, nil
}

func (f *fakeLedger) FindBySession(_ context.Context, shop uuid.UUID, day model.DateKey, session string) (*model.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[tokenKey{shop, day, session}]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *t
	return &c, nil
}

func (f *fakeLedger) Insert(_ context.Context, t *model.Token) error {
	if f.beforeInsert != nil {
		f.beforeInsert(t)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	k := tokenKey{t.ShopID, t.IssueDate, t.SessionID}
	if _, ok := f.tokens[k]; ok {
		return errs.ErrAlreadyExists
	}
	for kk, cur := range f.tokens {
		if kk.shop == t.ShopID && kk.day == t.IssueDate && cur.SequenceNumber == t.SequenceNumber {
			return errs.ErrSequenceTaken
		}
	}
	c := *t
	c.CreatedAt = time.Now()
	f.tokens[k] = &c
	f.inserts++
	return nil
}

func (f *fakeLedger) MarkExpiredBelow(_ context.Context, shop uuid.UUID, day model.DateKey, threshold int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return 0, f.markErr
	}
	var n int64
	for k, t := range f.tokens {
		if k.shop == shop && k.day == day && t.SequenceNumber < threshold && !t.Expired {
			t.Expired = true
			n++
		}
	}
	return n, nil
}

/************ transactions ************/

// fakeTx restores both fakes when fn fails.
type fakeTx struct {
	shops  *fakeShops
	ledger *fakeLedger
}

var _ repository.Transactor = fakeTx{}

func (t fakeTx) Shops() repository.ShopRepository { return t.shops }
func (t fakeTx) Ledger() repository.TokenLedger   { return t.ledger }

func (t fakeTx) InTx(ctx context.Context, fn func(context.Context, repository.Tx) error) error {
	t.shops.mu.Lock()
	shops := map[uuid.UUID]model.Shop{}
	for id, s := range t.shops.byID {
		shops[id] = *s
	}
	t.shops.mu.Unlock()
	t.ledger.mu.Lock()
	tokens := map[tokenKey]model.Token{}
	for k, v := range t.ledger.tokens {
		tokens[k] = *v
	}
	t.ledger.mu.Unlock()

	if err := fn(ctx, t); err != nil {
		t.shops.mu.Lock()
		for id, s := range shops {
			c := s
			t.shops.byID[id] = &c
		}
		t.shops.mu.Unlock()
		t.ledger.mu.Lock()
		t.ledger.tokens = map[tokenKey]*model.Token{}
		for k, v := range tokens {
			c := v
			t.ledger.tokens[k] = &c
		}
		t.ledger.mu.Unlock()
		return err
	}
	return nil
}

/************ clock & publisher ************/

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

type fakePub struct {
	mu  sync.Mutex
	got []model.ShopUpdate
}

func (p *fakePub) Publish(u model.ShopUpdate) {
	p.mu.Lock()
	p.got = append(p.got, u)
	p.mu.Unlock()
}

func (p *fakePub) all() []model.ShopUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.ShopUpdate(nil), p.got...)
}
