package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/and161185/token-queue/internal/errs"
	"github.com/and161185/token-queue/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

const shopCols = `id, owner_id, code, name, serving_number, last_reset_date, is_open, updated_at`

// ShopRepo implements ShopRepository using PostgreSQL.
type ShopRepo struct{ q querier }

// NewShopRepo constructs a shop repository.
func NewShopRepo(db *DB) *ShopRepo { return &ShopRepo{q: db.Pool} }

func scanShop(row pgx.Row) (*model.Shop, error) {
	var (
		s   model.Shop
		day time.Time
	)
	if err := row.Scan(&s.ID, &s.OwnerID, &s.Code, &s.Name, &s.ServingNumber, &day, &s.IsOpen, &s.UpdatedAt); err != nil {
		return nil, notFoundOr(err)
	}
	s.LastResetDate = model.DateKey(day.Format(model.DateLayout))
	return &s, nil
}

// codeTaken maps a unique violation on the shop code index to errs.ErrConflict.
func codeTaken(err error) error {
	if name, ok := uniqueViolation(err); ok {
		if name == "shops_owner_id_key" {
			return errs.ErrAlreadyExists
		}
		return errs.ErrConflict
	}
	return notFoundOr(err)
}

// Create inserts a new shop row.
func (r *ShopRepo) Create(ctx context.Context, s *model.Shop) error {
	const q = `
INSERT INTO shops (id, owner_id, code, name, serving_number, last_reset_date, is_open)
VALUES ($1, $2, $3, $4, $5, $6::date, $7)`
	_, err := r.q.Exec(ctx, q, s.ID, s.OwnerID, s.Code, s.Name, s.ServingNumber, string(s.LastResetDate), s.IsOpen)
	if err != nil {
		return codeTaken(err)
	}
	return nil
}

// GetByID selects a shop by ID.
func (r *ShopRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	q := `SELECT ` + shopCols + ` FROM shops WHERE id=$1 AND NOT deleted`
	return scanShop(r.q.QueryRow(ctx, q, id))
}

// GetByCode selects a shop by normalized code.
func (r *ShopRepo) GetByCode(ctx context.Context, code string) (*model.Shop, error) {
	q := `SELECT ` + shopCols + ` FROM shops WHERE code=$1 AND NOT deleted`
	return scanShop(r.q.QueryRow(ctx, q, code))
}

// GetByOwner selects the shop of an owner.
func (r *ShopRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Shop, error) {
	q := `SELECT ` + shopCols + ` FROM shops WHERE owner_id=$1 AND NOT deleted`
	return scanShop(r.q.QueryRow(ctx, q, ownerID))
}

// Update applies the non-nil patch fields in one statement.
func (r *ShopRepo) Update(ctx context.Context, id uuid.UUID, p model.ShopPatch) (*model.Shop, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}
	args := []any{id}
	var sets []string
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	if p.Code != nil {
		set("code", *p.Code)
	}
	if p.Name != nil {
		set("name", *p.Name)
	}
	if p.IsOpen != nil {
		set("is_open", *p.IsOpen)
	}
	q := `UPDATE shops SET ` + strings.Join(sets, ", ") + ` WHERE id=$1 AND NOT deleted RETURNING ` + shopCols
	s, err := scanShop(r.q.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, codeTaken(err)
	}
	return s, nil
}

// ResetIfStale performs the daily reset iff the stored date differs from today.
// The row lock taken by UPDATE makes concurrent callers observe a single reset.
func (r *ShopRepo) ResetIfStale(ctx context.Context, id uuid.UUID, today model.DateKey) (*model.Shop, bool, error) {
	q := `
UPDATE shops SET serving_number=0, last_reset_date=$2::date, is_open=false
WHERE id=$1 AND NOT deleted AND last_reset_date <> $2::date
RETURNING ` + shopCols
	s, err := scanShop(r.q.QueryRow(ctx, q, id, string(today)))
	switch {
	case err == nil:
		return s, true, nil
	case errors.Is(err, errs.ErrNotFound):
		cur, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, false, err
		}
		return cur, false, nil
	default:
		return nil, false, err
	}
}

// AdvanceServing increments the serving counter of a shop already reset for today.
func (r *ShopRepo) AdvanceServing(ctx context.Context, id uuid.UUID, today model.DateKey) (*model.Shop, error) {
	q := `
UPDATE shops SET serving_number=serving_number+1
WHERE id=$1 AND NOT deleted AND last_reset_date=$2::date
RETURNING ` + shopCols
	return scanShop(r.q.QueryRow(ctx, q, id, string(today)))
}
