package repository

import (
	"context"

	"github.com/and161185/token-queue/internal/model"
	"github.com/gofrs/uuid/v5"
)

// OwnerRepository provides access to shop owner accounts.
type OwnerRepository interface {
	// Create inserts a new owner; a taken username yields errs.ErrAlreadyExists.
	Create(ctx context.Context, o *model.Owner) error
	// GetByID loads an owner by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Owner, error)
	// GetByUsername loads an owner by username.
	GetByUsername(ctx context.Context, username string) (*model.Owner, error)
}
