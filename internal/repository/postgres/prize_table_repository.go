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
var _ repository.PrizeTableRepository = (*PrizeTableRepositoryImpl)(nil)

type PrizeTableRepositoryImpl struct {
	*TransactionManager
}

func NewPrizeTableRepository(pool *pgxpool.Pool) repository.PrizeTableRepository {
	return &PrizeTableRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *PrizeTableRepositoryImpl) LatestPrizeTable(ctx context.Context) (*model.PrizeTableConfig, error) {
	query := `
        SELECT version, spin_cost, entries, created_by, created_at
        FROM prize_tables ORDER BY version DESC LIMIT 1`
	return r.get(ctx, query)
}

func (r *PrizeTableRepositoryImpl) GetPrizeTable(ctx context.Context, version int64) (*model.PrizeTableConfig, error) {
	query := `
        SELECT version, spin_cost, entries, created_by, created_at
        FROM prize_tables WHERE version = $1`
	return r.get(ctx, query, version)
}

func (r *PrizeTableRepositoryImpl) get(ctx context.Context, query string, args ...any) (*model.PrizeTableConfig, error) {
	cfg := &model.PrizeTableConfig{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(&cfg.Version, &cfg.SpinCost, &cfg.Entries, &cfg.CreatedBy, &cfg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPrizeTableNotFound
		}
		return nil, fmt.Errorf("failed to get prize table: %w", err)
	}
	return cfg, nil
}

// InsertPrizeTable stores a new version; versions are never overwritten
func (r *PrizeTableRepositoryImpl) InsertPrizeTable(ctx context.Context, cfg *model.PrizeTableConfig) error {
	query := `
        INSERT INTO prize_tables (version, spin_cost, entries, created_by)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, cfg.Version, cfg.SpinCost, cfg.Entries, cfg.CreatedBy).Scan(&cfg.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: prize table version %d", model.ErrDuplicateEntry, cfg.Version)
		}
		return fmt.Errorf("failed to insert prize table: %w", err)
	}
	return nil
}
