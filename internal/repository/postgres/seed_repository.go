package postgres

import (
	"context"
	"errors"
	"fmt"
	"wager-ledger/internal/model"
	"wager-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.SeedRepository = (*SeedRepositoryImpl)(nil)

type SeedRepositoryImpl struct {
	*TransactionManager
}

func NewSeedRepository(pool *pgxpool.Pool) repository.SeedRepository {
	return &SeedRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// EnsureEpoch keeps the first seed written for an epoch; later writers read it back
func (r *SeedRepositoryImpl) EnsureEpoch(ctx context.Context, seed *model.ServerSeed) (*model.ServerSeed, error) {
	query := `
        INSERT INTO server_seeds (epoch, server_seed, commitment, starts_at, ends_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (epoch) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, seed.Epoch, seed.ServerSeed, seed.Commitment, seed.StartsAt, seed.EndsAt); err != nil {
		return nil, fmt.Errorf("failed to insert server seed: %w", err)
	}
	return r.GetEpoch(ctx, seed.Epoch)
}

func (r *SeedRepositoryImpl) GetEpoch(ctx context.Context, epoch int64) (*model.ServerSeed, error) {
	query := `SELECT epoch, server_seed, commitment, starts_at, ends_at FROM server_seeds WHERE epoch = $1`

	s := &model.ServerSeed{}
	err := r.pool.QueryRow(ctx, query, epoch).Scan(&s.Epoch, &s.ServerSeed, &s.Commitment, &s.StartsAt, &s.EndsAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEpochNotFound
		}
		return nil, fmt.Errorf("failed to get server seed: %w", err)
	}
	return s, nil
}

// ClaimNonce advances the highest nonce of (account, epoch) inside the spin transaction
func (r *SeedRepositoryImpl) ClaimNonce(ctx context.Context, accountID, epoch int64, nonce *int64, tx pgx.Tx) (int64, error) {
	var (
		query string
		args  []any
	)
	if nonce == nil {
		query = `
            INSERT INTO spin_nonces (account_id, epoch, highest_nonce)
            VALUES ($1, $2, 1)
            ON CONFLICT (account_id, epoch)
            DO UPDATE SET highest_nonce = spin_nonces.highest_nonce + 1, updated_at = NOW()
            RETURNING highest_nonce`
		args = []any{accountID, epoch}
	} else {
		query = `
            INSERT INTO spin_nonces (account_id, epoch, highest_nonce)
            VALUES ($1, $2, $3)
            ON CONFLICT (account_id, epoch)
            DO UPDATE SET highest_nonce = EXCLUDED.highest_nonce, updated_at = NOW()
            WHERE spin_nonces.highest_nonce < EXCLUDED.highest_nonce
            RETURNING highest_nonce`
		args = []any{accountID, epoch, *nonce}
	}

	var claimed int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&claimed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: nonce %d already used in epoch %d", model.ErrDuplicateNonce, *nonce, epoch)
		}
		return 0, fmt.Errorf("failed to claim nonce: %w", err)
	}
	return claimed, nil
}
