package postgres

import (
	"context"

	"github.com/and161185/token-queue/internal/errs"
	"github.com/and161185/token-queue/internal/model"
	"github.com/gofrs/uuid/v5"
)

// OwnerRepo implements OwnerRepository using PostgreSQL.
type OwnerRepo struct{ db *DB }

// NewOwnerRepo constructs an owner repository.
func NewOwnerRepo(db *DB) *OwnerRepo { return &OwnerRepo{db: db} }

// Create inserts a new owner row.
func (r *OwnerRepo) Create(ctx context.Context, o *model.Owner) error {
	const q = `
INSERT INTO owners (id, username, pwd_hash, salt_auth)
VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, o.ID, o.Username, o.PwdHash, o.SaltAuth)
	if _, ok := uniqueViolation(err); ok {
		return errs.ErrAlreadyExists
	}
	return classify(err)
}

// GetByID selects an owner by ID.
func (r *OwnerRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	const q = `
SELECT id, username, pwd_hash, salt_auth, created_at
FROM owners WHERE id=$1`
	var o model.Owner
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.Username, &o.PwdHash, &o.SaltAuth, &o.CreatedAt); err != nil {
		return nil, notFoundOr(err)
	}
	return &o, nil
}

// GetByUsername selects an owner by username.
func (r *OwnerRepo) GetByUsername(ctx context.Context, username string) (*model.Owner, error) {
	const q = `
SELECT id, username, pwd_hash, salt_auth, created_at
FROM owners WHERE username=$1`
	var o model.Owner
	if err := r.db.Pool.QueryRow(ctx, q, username).Scan(&o.ID, &o.Username, &o.PwdHash, &o.SaltAuth, &o.CreatedAt); err != nil {
		return nil, notFoundOr(err)
	}
	return &o, nil
}
