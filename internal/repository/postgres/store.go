package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/and161185/token-queue/internal/repository"
)

// querier is satisfied by both the pool and an open pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txRepos struct {
	shops  *ShopRepo
	ledger *TokenLedger
}

func (t txRepos) Shops() repository.ShopRepository { return t.shops }
func (t txRepos) Ledger() repository.TokenLedger   { return t.ledger }

// Store runs registry and ledger statements in one transaction.
type Store struct{ db *DB }

// NewStore constructs a Store.
func NewStore(db *DB) *Store { return &Store{db: db} }

// InTx runs fn in a read-committed transaction, committing iff fn returns nil.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) (err error) {
	tx, err := s.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return classify(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = classify(e)
		}
	}()
	return fn(ctx, txRepos{shops: &ShopRepo{q: tx}, ledger: &TokenLedger{q: tx}})
}
