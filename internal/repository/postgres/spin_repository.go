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
var _ repository.SpinRepository = (*SpinRepositoryImpl)(nil)

// The server seed is only selected once its epoch has ended.
const spinSelect = `
        SELECT s.id, s.account_id, s.cost, s.prize_amount, s.prize_index, s.client_seed,
               CASE WHEN ss.ends_at <= NOW() THEN ss.server_seed ELSE '' END,
               s.server_seed_hash, s.epoch, s.nonce, s.table_version, s.draw_value, s.net_result,
               s.flagged, s.flag_reason, s.created_at`

type SpinRepositoryImpl struct {
	*TransactionManager
}

func NewSpinRepository(pool *pgxpool.Pool) repository.SpinRepository {
	return &SpinRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanSpin(row pgx.Row, extra ...any) (*model.SpinRecord, error) {
	s := &model.SpinRecord{}
	dest := []any{&s.ID, &s.AccountID, &s.Cost, &s.PrizeAmount, &s.PrizeIndex, &s.ClientSeed,
		&s.ServerSeed, &s.ServerSeedHash, &s.Epoch, &s.Nonce, &s.TableVersion, &s.DrawValue, &s.NetResult,
		&s.Flagged, &s.FlagReason, &s.CreatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SpinRepositoryImpl) InsertSpin(ctx context.Context, spin *model.SpinRecord, tx pgx.Tx) error {
	query := `
        INSERT INTO spins (id, account_id, cost, prize_amount, prize_index, client_seed, server_seed_hash,
                           epoch, nonce, table_version, draw_value, net_result)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING created_at`

	err := tx.QueryRow(ctx, query, spin.ID, spin.AccountID, spin.Cost, spin.PrizeAmount, spin.PrizeIndex,
		spin.ClientSeed, spin.ServerSeedHash, spin.Epoch, spin.Nonce, spin.TableVersion, spin.DrawValue, spin.NetResult).
		Scan(&spin.CreatedAt)
	if err != nil {
		// CONSTRAINT spins_account_epoch_nonce_key UNIQUE (account_id, epoch, nonce)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: nonce %d in epoch %d", model.ErrDuplicateNonce, spin.Nonce, spin.Epoch)
		}
		return fmt.Errorf("failed to insert spin: %w", err)
	}
	return nil
}

func (r *SpinRepositoryImpl) GetSpin(ctx context.Context, spinID string, tx ...pgx.Tx) (*model.SpinRecord, error) {
	query := spinSelect + `
        FROM spins s JOIN server_seeds ss ON ss.epoch = s.epoch
        WHERE s.id = $1`

	spin, err := scanSpin(r.getExecutor(tx...).QueryRow(ctx, query, spinID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSpinNotFound
		}
		return nil, fmt.Errorf("failed to get spin: %w", err)
	}
	return spin, nil
}

// ListSpinsByAccount retrieves paginated spins, newest first
func (r *SpinRepositoryImpl) ListSpinsByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*model.SpinRecord, int, error) {
	query := spinSelect + `, COUNT(*) OVER()
        FROM spins s JOIN server_seeds ss ON ss.epoch = s.epoch
        WHERE s.account_id = $1
        ORDER BY s.created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query spins: %w", err)
	}
	defer rows.Close()

	var (
		spins []*model.SpinRecord
		total int
	)
	for rows.Next() {
		spin, err := scanSpin(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan spin: %w", err)
		}
		spins = append(spins, spin)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read spins: %w", err)
	}
	return spins, total, nil
}

// FlagSpin marks a spin for review; balances are not touched
func (r *SpinRepositoryImpl) FlagSpin(ctx context.Context, spinID, reason string, tx ...pgx.Tx) error {
	query := `UPDATE spins SET flagged = TRUE, flag_reason = $2 WHERE id = $1`

	tag, err := r.getExecutor(tx...).Exec(ctx, query, spinID, reason)
	if err != nil {
		return fmt.Errorf("failed to flag spin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSpinNotFound
	}
	return nil
}
