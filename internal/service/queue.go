package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/token-queue/internal/errs"
	"github.com/and161185/token-queue/internal/metrics"
	"github.com/and161185/token-queue/internal/model"
	"github.com/and161185/token-queue/internal/period"
	"github.com/and161185/token-queue/internal/repository"
	"github.com/and161185/token-queue/internal/shopcode"
)

// Input limits.
const (
	MaxSessionLen = 128
	MaxNameLen    = 80
)

// issueAttempts bounds sequence allocation when another session takes the
// computed number first.
const issueAttempts = 3

// Publisher receives the state of a shop after every successful write.
type Publisher interface {
	Publish(u model.ShopUpdate)
}

// QueueService is the token issuance and serving-counter state machine.
type QueueService interface {
	// SetupShop creates the owner's shop or updates its code and name.
	SetupShop(ctx context.Context, ownerID uuid.UUID, code, name string) (model.ShopState, error)
	// OwnerShop returns the owner's shop, or a ReasonUnconfigured precondition error.
	OwnerShop(ctx context.Context, ownerID uuid.UUID) (model.ShopState, error)
	// SetOpen flips the owner gate.
	SetOpen(ctx context.Context, ownerID uuid.UUID, open bool) (model.ShopState, error)
	// AdvanceServing calls the next number and expires every token below it.
	AdvanceServing(ctx context.Context, ownerID uuid.UUID) (model.ShopState, error)
	// LookupByCode resolves a user-entered code.
	LookupByCode(ctx context.Context, code string) (model.ShopState, error)
	// LookupByID resolves a shop by identity.
	LookupByID(ctx context.Context, shopID uuid.UUID) (model.ShopState, error)
	// IssueToken returns the session's number for today, allocating one if needed.
	IssueToken(ctx context.Context, code, sessionID string) (model.IssueResult, error)
	// MyToken reconciles a session's token with the serving counter.
	MyToken(ctx context.Context, code, sessionID string) (model.TokenState, error)
}

type QueueServiceImpl struct {
	shops  repository.ShopRepository
	ledger repository.TokenLedger
	tx     repository.Transactor
	period *period.Oracle
	pub    Publisher
	m      *metrics.Metrics
	log    *zap.Logger
}

// NewQueueService wires the state machine. pub and m may be nil.
func NewQueueService(
	shops repository.ShopRepository,
	ledger repository.TokenLedger,
	tx repository.Transactor,
	oracle *period.Oracle,
	pub Publisher,
	m *metrics.Metrics,
	log *zap.Logger,
) *QueueServiceImpl {
	return &QueueServiceImpl{shops: shops, ledger: ledger, tx: tx, period: oracle, pub: pub, m: m, log: log}
}

// day is one reading of the period oracle shared by a whole operation.
type day struct {
	key       model.DateKey
	inWindow  bool
	remaining int
}

func (s *QueueServiceImpl) today() day {
	t := s.period.Now()
	return day{key: period.DateKeyOf(t), inWindow: period.InWindowOn(t), remaining: period.DaysRemainingOn(t)}
}

// StatusOf derives the queue state in priority order: window, owner gate.
func StatusOf(shop model.Shop, inWindow bool) model.Status {
	switch {
	case !inWindow:
		return model.StatusInactive
	case !shop.IsOpen:
		return model.StatusOwnerClosed
	default:
		return model.StatusActive
	}
}

// SetupShop validates input, then creates or renames the owner's shop.
func (s *QueueServiceImpl) SetupShop(ctx context.Context, ownerID uuid.UUID, rawCode, name string) (model.ShopState, error) {
	if ownerID == uuid.Nil {
		return model.ShopState{}, fmt.Errorf("%w: empty owner", errs.ErrValidation)
	}
	code, err := shopcode.Parse(rawCode)
	if err != nil {
		return model.ShopState{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ShopState{}, fmt.Errorf("%w: empty shop name", errs.ErrValidation)
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return model.ShopState{}, fmt.Errorf("%w: shop name longer than %d", errs.ErrValidation, MaxNameLen)
	}

	d := s.today()
	cur, err := s.shops.GetByOwner(ctx, ownerID)
	if errors.Is(err, errs.ErrNotFound) {
		created, cerr := s.createShop(ctx, ownerID, code, name, d)
		if cerr == nil {
			return s.project(ctx, created, d)
		}
		if !errors.Is(cerr, errs.ErrAlreadyExists) {
			return model.ShopState{}, cerr
		}
		// a concurrent setup by the same owner won; fall through to update
		cur, err = s.shops.GetByOwner(ctx, ownerID)
	}
	if err != nil {
		return model.ShopState{}, s.storeErr("get owner shop", err)
	}

	cur, err = s.fresh(ctx, cur, d)
	if err != nil {
		return model.ShopState{}, err
	}
	if cur.Code == code && cur.Name == name {
		return s.project(ctx, cur, d)
	}
	upd, err := s.shops.Update(ctx, cur.ID, model.ShopPatch{Code: &code, Name: &name})
	if err != nil {
		return model.ShopState{}, s.storeErr("update shop", err)
	}
	s.publish(upd)
	s.log.Info("shop updated", zap.String("shop_id", upd.ID.String()), zap.String("code", upd.Code))
	return s.project(ctx, upd, d)
}

func (s *QueueServiceImpl) createShop(ctx context.Context, ownerID uuid.UUID, code, name string, d day) (*model.Shop, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	shop := &model.Shop{
		ID:            id,
		OwnerID:       ownerID,
		Code:          code,
		Name:          name,
		LastResetDate: d.key,
	}
	if err := s.shops.Create(ctx, shop); err != nil {
		return nil, s.storeErr("create shop", err)
	}
	s.log.Info("shop created", zap.String("shop_id", id.String()), zap.String("code", code))
	return shop, nil
}

// OwnerShop implements QueueService.
func (s *QueueServiceImpl) OwnerShop(ctx context.Context, ownerID uuid.UUID) (model.ShopState, error) {
	d := s.today()
	shop, err := s.ownerShop(ctx, ownerID, d)
	if err != nil {
		return model.ShopState{}, err
	}
	return s.project(ctx, shop, d)
}

// SetOpen is allowed outside the distribution window; the gate is independent of it.
func (s *QueueServiceImpl) SetOpen(ctx context.Context, ownerID uuid.UUID, open bool) (model.ShopState, error) {
	d := s.today()
	shop, err := s.ownerShop(ctx, ownerID, d)
	if err != nil {
		return model.ShopState{}, err
	}
	if shop.IsOpen != open {
		shop, err = s.shops.Update(ctx, shop.ID, model.ShopPatch{IsOpen: &open})
		if err != nil {
			return model.ShopState{}, s.storeErr("set open", err)
		}
		s.publish(shop)
		s.log.Info("queue gate changed", zap.String("shop_id", shop.ID.String()), zap.Bool("open", open))
	}
	return s.project(ctx, shop, d)
}

// AdvanceServing increments the counter without an upper bound and expires
// every token below the new value in the same transaction. It is refused only
// outside the distribution window.
func (s *QueueServiceImpl) AdvanceServing(ctx context.Context, ownerID uuid.UUID) (model.ShopState, error) {
	d := s.today()
	shop, err := s.ownerShop(ctx, ownerID, d)
	if err != nil {
		return model.ShopState{}, err
	}
	if !d.inWindow {
		return model.ShopState{}, errs.Precondition(errs.ReasonInactive)
	}

	var (
		next    *model.Shop
		expired int64
	)
	err = s.tx.InTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		n, err := tx.Shops().AdvanceServing(ctx, shop.ID, d.key)
		if err != nil {
			return err
		}
		expired, err = tx.Ledger().MarkExpiredBelow(ctx, shop.ID, d.key, n.ServingNumber)
		if err != nil {
			return err
		}
		next = n
		return nil
	})
	if err != nil {
		return model.ShopState{}, s.storeErr("advance serving", err)
	}

	s.m.ServingAdvanced()
	s.publish(next)
	s.log.Info("serving advanced",
		zap.String("shop_id", next.ID.String()),
		zap.Int64("serving", next.ServingNumber),
		zap.Int64("expired", expired))
	return s.project(ctx, next, d)
}

// LookupByCode normalizes code before resolving it.
func (s *QueueServiceImpl) LookupByCode(ctx context.Context, rawCode string) (model.ShopState, error) {
	code, err := shopcode.Parse(rawCode)
	if err != nil {
		return model.ShopState{}, err
	}
	d := s.today()
	shop, err := s.shopByCode(ctx, code, d)
	if err != nil {
		return model.ShopState{}, err
	}
	return s.project(ctx, shop, d)
}

// LookupByID implements QueueService.
func (s *QueueServiceImpl) LookupByID(ctx context.Context, shopID uuid.UUID) (model.ShopState, error) {
	d := s.today()
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return model.ShopState{}, s.storeErr("get shop", err)
	}
	shop, err = s.fresh(ctx, shop, d)
	if err != nil {
		return model.ShopState{}, err
	}
	return s.project(ctx, shop, d)
}

// IssueToken checks, in order, shop existence, the window and the owner gate,
// then returns the session's existing number or allocates highest+1.
func (s *QueueServiceImpl) IssueToken(ctx context.Context, rawCode, sessionID string) (model.IssueResult, error) {
	res, err := s.issue(ctx, rawCode, sessionID)
	switch {
	case err == nil && res.AlreadyIssued:
		s.m.TokenIssued(metrics.OutcomeExisting)
	case err == nil:
		s.m.TokenIssued(metrics.OutcomeIssued)
	case errors.Is(err, errs.ErrPrecondition), errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrValidation):
		s.m.TokenIssued(metrics.OutcomeRefused)
	default:
		s.m.TokenIssued(metrics.OutcomeFailed)
	}
	return res, err
}

func (s *QueueServiceImpl) issue(ctx context.Context, rawCode, sessionID string) (model.IssueResult, error) {
	if err := validSession(sessionID); err != nil {
		return model.IssueResult{}, err
	}
	code, err := shopcode.Parse(rawCode)
	if err != nil {
		return model.IssueResult{}, err
	}
	d := s.today()
	shop, err := s.shopByCode(ctx, code, d)
	if err != nil {
		return model.IssueResult{}, err
	}

	st := StatusOf(*shop, d.inWindow)
	switch st {
	case model.StatusInactive:
		return model.IssueResult{}, errs.Precondition(errs.ReasonInactive)
	case model.StatusOwnerClosed:
		return model.IssueResult{}, errs.Precondition(errs.ReasonOwnerClosed)
	}
	result := func(number int64, already bool) model.IssueResult {
		return model.IssueResult{Number: number, AlreadyIssued: already, Serving: shop.ServingNumber, Status: st}
	}

	tok, err := s.ledger.FindBySession(ctx, shop.ID, d.key, sessionID)
	switch {
	case err == nil:
		return result(tok.SequenceNumber, true), nil
	case !errors.Is(err, errs.ErrNotFound):
		return model.IssueResult{}, s.storeErr("find token", err)
	}

	for attempt := 0; attempt < issueAttempts; attempt++ {
		high, err := s.ledger.HighestSequence(ctx, shop.ID, d.key)
		if err != nil {
			return model.IssueResult{}, s.storeErr("highest sequence", err)
		}
		tok := &model.Token{ShopID: shop.ID, IssueDate: d.key, SessionID: sessionID, SequenceNumber: high + 1}
		err = s.ledger.Insert(ctx, tok)
		switch {
		case err == nil:
			return result(tok.SequenceNumber, false), nil
		case errors.Is(err, errs.ErrAlreadyExists):
			// the same session raced itself; the stored number wins
			prev, ferr := s.ledger.FindBySession(ctx, shop.ID, d.key, sessionID)
			if ferr != nil {
				return model.IssueResult{}, s.storeErr("find token", ferr)
			}
			return result(prev.SequenceNumber, true), nil
		case errors.Is(err, errs.ErrSequenceTaken):
			s.log.Debug("sequence taken, reallocating",
				zap.String("shop_id", shop.ID.String()), zap.Int64("sequence", tok.SequenceNumber))
			continue
		default:
			return model.IssueResult{}, s.storeErr("insert token", err)
		}
	}
	return model.IssueResult{}, fmt.Errorf("%w: sequence allocation contended", errs.ErrTransient)
}

// MyToken derives Expired from the ledger flag and the counter, so a number
// below the current serving value always reads as expired.
func (s *QueueServiceImpl) MyToken(ctx context.Context, rawCode, sessionID string) (model.TokenState, error) {
	if err := validSession(sessionID); err != nil {
		return model.TokenState{}, err
	}
	code, err := shopcode.Parse(rawCode)
	if err != nil {
		return model.TokenState{}, err
	}
	d := s.today()
	shop, err := s.shopByCode(ctx, code, d)
	if err != nil {
		return model.TokenState{}, err
	}
	tok, err := s.ledger.FindBySession(ctx, shop.ID, d.key, sessionID)
	if err != nil {
		return model.TokenState{}, s.storeErr("find token", err)
	}
	serving := shop.ServingNumber
	return model.TokenState{
		Number:  tok.SequenceNumber,
		Expired: tok.Expired || tok.SequenceNumber < serving,
		Called:  tok.SequenceNumber <= serving,
		Ahead:   max(0, tok.SequenceNumber-serving),
		Serving: serving,
	}, nil
}

func validSession(id string) error {
	if id == "" || len(id) > MaxSessionLen {
		return fmt.Errorf("%w: session id must be 1..%d bytes", errs.ErrValidation, MaxSessionLen)
	}
	return nil
}

func (s *QueueServiceImpl) shopByCode(ctx context.Context, code string, d day) (*model.Shop, error) {
	shop, err := s.shops.GetByCode(ctx, code)
	if err != nil {
		return nil, s.storeErr("get shop", err)
	}
	return s.fresh(ctx, shop, d)
}

func (s *QueueServiceImpl) ownerShop(ctx context.Context, ownerID uuid.UUID, d day) (*model.Shop, error) {
	shop, err := s.shops.GetByOwner(ctx, ownerID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.Precondition(errs.ReasonUnconfigured)
	}
	if err != nil {
		return nil, s.storeErr("get owner shop", err)
	}
	return s.fresh(ctx, shop, d)
}

// fresh applies the daily reset before anything reads the serving counter.
func (s *QueueServiceImpl) fresh(ctx context.Context, shop *model.Shop, d day) (*model.Shop, error) {
	if shop.LastResetDate == d.key {
		return shop, nil
	}
	cur, did, err := s.shops.ResetIfStale(ctx, shop.ID, d.key)
	if err != nil {
		return nil, s.storeErr("daily reset", err)
	}
	if did {
		s.m.DailyReset()
		s.publish(cur)
		s.log.Info("daily reset",
			zap.String("shop_id", cur.ID.String()),
			zap.String("from", string(shop.LastResetDate)),
			zap.String("to", string(d.key)))
	}
	return cur, nil
}

func (s *QueueServiceImpl) project(ctx context.Context, shop *model.Shop, d day) (model.ShopState, error) {
	issued, err := s.ledger.HighestSequence(ctx, shop.ID, d.key)
	if err != nil {
		return model.ShopState{}, s.storeErr("highest sequence", err)
	}
	return model.ShopState{
		Shop:          *shop,
		Status:        StatusOf(*shop, d.inWindow),
		Issued:        issued,
		Waiting:       max(0, issued-shop.ServingNumber),
		DaysRemaining: d.remaining,
	}, nil
}

func (s *QueueServiceImpl) publish(shop *model.Shop) {
	if s.pub != nil {
		s.pub.Publish(model.UpdateOf(*shop))
	}
}

// storeErr logs transient store failures; every error is returned unchanged.
func (s *QueueServiceImpl) storeErr(op string, err error) error {
	if errors.Is(err, errs.ErrTransient) {
		s.log.Warn("store unavailable", zap.String("op", op), zap.Error(err))
	}
	return err
}
