package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wager-ledger/internal/model"
	"wager-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.SettlementRepository = (*SettlementRepositoryImpl)(nil)

const settlementColumns = `id, account_id, direction, amount, evidence, status, reviewer_id,
        review_notes, transfer_ref, created_at, updated_at, resolved_at`

type SettlementRepositoryImpl struct {
	*TransactionManager
}

func NewSettlementRepository(pool *pgxpool.Pool) repository.SettlementRepository {
	return &SettlementRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanSettlement(row pgx.Row, extra ...any) (*model.SettlementRequest, error) {
	s := &model.SettlementRequest{}
	dest := []any{&s.ID, &s.AccountID, &s.Direction, &s.Amount, &s.Evidence, &s.Status, &s.ReviewerID,
		&s.ReviewNotes, &s.TransferRef, &s.CreatedAt, &s.UpdatedAt, &s.ResolvedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SettlementRepositoryImpl) InsertRequest(ctx context.Context, req *model.SettlementRequest, tx pgx.Tx) error {
	query := `
        INSERT INTO settlement_requests (id, account_id, direction, amount, evidence, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	evidence := req.Evidence
	if evidence == nil {
		evidence = map[string]string{}
	}
	err := tx.QueryRow(ctx, query, req.ID, req.AccountID, string(req.Direction), req.Amount, evidence, string(req.Status)).
		Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if ok, constraint := isCheckViolation(err); ok {
			return fmt.Errorf("%w: constraint %s", model.ErrInvalidAmount, constraint)
		}
		return fmt.Errorf("failed to insert settlement request: %w", err)
	}
	return nil
}

func (r *SettlementRepositoryImpl) GetRequest(ctx context.Context, requestID string, tx ...pgx.Tx) (*model.SettlementRequest, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_requests WHERE id = $1`

	req, err := scanSettlement(r.getExecutor(tx...).QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSettlementNotFound
		}
		return nil, fmt.Errorf("failed to get settlement request: %w", err)
	}
	return req, nil
}

// GetRequestForUpdate retrieves a request with row-level lock
func (r *SettlementRepositoryImpl) GetRequestForUpdate(ctx context.Context, requestID string, tx pgx.Tx) (*model.SettlementRequest, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_requests WHERE id = $1 FOR UPDATE`

	req, err := scanSettlement(tx.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSettlementNotFound
		}
		return nil, fmt.Errorf("failed to get settlement request for update: %w", err)
	}
	return req, nil
}

func (r *SettlementRepositoryImpl) UpdateRequest(ctx context.Context, req *model.SettlementRequest, tx pgx.Tx) error {
	query := `
        UPDATE settlement_requests
        SET status = $2,
            reviewer_id = $3,
            review_notes = $4,
            transfer_ref = $5,
            resolved_at = $6,
            updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`

	err := tx.QueryRow(ctx, query, req.ID, string(req.Status), req.ReviewerID, req.ReviewNotes, req.TransferRef, req.ResolvedAt).
		Scan(&req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrSettlementNotFound
		}
		return fmt.Errorf("failed to update settlement request: %w", err)
	}
	return nil
}

// SumWithdrawalsSince sums withdrawals not rejected or cancelled created at or after since
func (r *SettlementRepositoryImpl) SumWithdrawalsSince(ctx context.Context, accountID int64, since time.Time, tx pgx.Tx) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)::BIGINT
        FROM settlement_requests
        WHERE account_id = $1
          AND direction = 'withdrawal'
          AND status NOT IN ('rejected', 'cancelled')
          AND created_at >= $2`

	var sum int64
	if err := tx.QueryRow(ctx, query, accountID, since).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum withdrawals: %w", err)
	}
	return sum, nil
}

// ListPendingCreated retrieves requests in statuses created in [from, to), oldest first
func (r *SettlementRepositoryImpl) ListPendingCreated(ctx context.Context, statuses []model.SettlementStatus, from, to time.Time, limit int) ([]*model.SettlementRequest, error) {
	query := `SELECT ` + settlementColumns + `
        FROM settlement_requests
        WHERE status = ANY($1) AND created_at >= $2 AND created_at < $3
        ORDER BY created_at
        LIMIT $4`

	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	rows, err := r.pool.Query(ctx, query, names, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending settlements: %w", err)
	}
	return collectSettlements(rows)
}

func (r *SettlementRepositoryImpl) ListStaleWithdrawals(ctx context.Context, cutoff time.Time, limit int) ([]*model.SettlementRequest, error) {
	query := `SELECT ` + settlementColumns + `
        FROM settlement_requests
        WHERE status = $1 AND direction = $2 AND created_at < $3
        ORDER BY created_at
        LIMIT $4`

	rows, err := r.pool.Query(ctx, query, string(model.StatusSubmitted), string(model.DirectionWithdrawal), cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale withdrawals: %w", err)
	}
	return collectSettlements(rows)
}

func collectSettlements(rows pgx.Rows) ([]*model.SettlementRequest, error) {
	defer rows.Close()

	var reqs []*model.SettlementRequest
	for rows.Next() {
		req, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement request: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settlement requests: %w", err)
	}
	return reqs, nil
}

func (r *SettlementRepositoryImpl) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*model.SettlementRequest, int, error) {
	query := `SELECT ` + settlementColumns + `, COUNT(*) OVER()
        FROM settlement_requests WHERE account_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	return r.list(ctx, query, accountID, limit, offset)
}

func (r *SettlementRepositoryImpl) ListByStatus(ctx context.Context, status model.SettlementStatus, limit, offset int) ([]*model.SettlementRequest, int, error) {
	query := `SELECT ` + settlementColumns + `, COUNT(*) OVER()
        FROM settlement_requests WHERE status = $1
        ORDER BY created_at
        LIMIT $2 OFFSET $3`
	return r.list(ctx, query, string(status), limit, offset)
}

func (r *SettlementRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*model.SettlementRequest, int, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query settlement requests: %w", err)
	}
	defer rows.Close()

	var (
		reqs  []*model.SettlementRequest
		total int
	)
	for rows.Next() {
		req, err := scanSettlement(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan settlement request: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read settlement requests: %w", err)
	}
	return reqs, total, nil
}
