// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/token-queue/internal/model"
	"github.com/gofrs/uuid/v5"
)

// ShopRepository is the shop registry.
type ShopRepository interface {
	// Create inserts a new shop; a taken code yields errs.ErrConflict.
	Create(ctx context.Context, s *model.Shop) error
	// GetByID loads a shop by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)
	// GetByCode loads a shop by its normalized code.
	GetByCode(ctx context.Context, code string) (*model.Shop, error)
	// GetByOwner loads the shop owned by ownerID.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Shop, error)
	// Update atomically applies a partial update and returns the new row.
	// A code collision yields errs.ErrConflict, a missing row errs.ErrNotFound.
	Update(ctx context.Context, id uuid.UUID, p model.ShopPatch) (*model.Shop, error)
	// ResetIfStale zeroes the serving counter, closes the queue and stamps today
	// when last_reset_date differs from today, in a single statement.
	// It reports whether this call performed the reset and returns the current row.
	ResetIfStale(ctx context.Context, id uuid.UUID, today model.DateKey) (*model.Shop, bool, error)
	// AdvanceServing increments serving_number by one for a shop whose
	// last_reset_date equals today and returns the new row.
	AdvanceServing(ctx context.Context, id uuid.UUID, today model.DateKey) (*model.Shop, error)
}

// Tx exposes the registry and ledger bound to one open transaction.
type Tx interface {
	Shops() ShopRepository
	Ledger() TokenLedger
}

// Transactor runs fn atomically; any error returned by fn rolls back.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
