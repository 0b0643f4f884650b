package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wager-ledger/internal/config"
	"wager-ledger/internal/metrics"
	"wager-ledger/internal/model"
	"wager-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const sweepBatch = 50

type SettlementServiceImpl struct {
	accountRepo    repository.AccountRepository
	settlementRepo repository.SettlementRepository
	outboxRepo     repository.OutboxRepository
	dbManager      repository.DBManager
	ledger         LedgerService
	cfg            config.SettlementConfig
	logger         zerolog.Logger
	now            func() time.Time
}

func NewSettlementService(
	accountRepo repository.AccountRepository,
	settlementRepo repository.SettlementRepository,
	outboxRepo repository.OutboxRepository,
	dbManager repository.DBManager,
	ledger LedgerService,
	cfg config.SettlementConfig,
	logger zerolog.Logger,
) SettlementService {
	return &SettlementServiceImpl{
		accountRepo:    accountRepo,
		settlementRepo: settlementRepo,
		outboxRepo:     outboxRepo,
		dbManager:      dbManager,
		ledger:         ledger,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *SettlementServiceImpl) RequestDeposit(ctx context.Context, accountID int64, req *model.DepositRequest) (*model.SettlementResponse, error) {
	if req.Amount < s.cfg.MinDeposit {
		return nil, &model.LimitError{Err: model.ErrBelowMinimum, Limit: s.cfg.MinDeposit, Requested: req.Amount}
	}

	request := &model.SettlementRequest{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Direction: model.DirectionDeposit,
		Amount:    req.Amount,
		Evidence:  req.Evidence,
		Status:    model.StatusSubmitted,
	}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccount(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		if account.Status != model.AccountActive {
			return model.ErrAccountInactive
		}
		if err := s.settlementRepo.InsertRequest(ctx, request, tx); err != nil {
			return fmt.Errorf("insert settlement request: %w", err)
		}
		return s.notify(ctx, model.TopicSettlementSubmitted, request, tx)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordSettlement(request.Direction.String(), request.Status.String())
	s.logger.Info().
		Str("request_id", request.ID).
		Int64("account_id", accountID).
		Int64("amount", request.Amount).
		Msg("deposit submitted")
	return &model.SettlementResponse{RequestID: request.ID, Status: request.Status.String()}, nil
}

// RequestWithdrawal checks the daily cap and holds the funds in the same transaction,
// so concurrent requests on one account cannot both pass the cap.
func (s *SettlementServiceImpl) RequestWithdrawal(ctx context.Context, accountID int64, req *model.WithdrawalRequest) (*model.SettlementResponse, error) {
	if req.Amount < s.cfg.MinWithdrawal {
		return nil, &model.LimitError{Err: model.ErrBelowMinimum, Limit: s.cfg.MinWithdrawal, Requested: req.Amount}
	}

	now := s.now()
	request := &model.SettlementRequest{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Direction: model.DirectionWithdrawal,
		Amount:    req.Amount,
		Evidence:  req.Destination,
		Status:    model.StatusSubmitted,
	}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if account.SettlementFrozen {
			return fmt.Errorf("%w: settlement frozen for account %d", model.ErrLedgerCorruption, accountID)
		}

		used, err := s.settlementRepo.SumWithdrawalsSince(ctx, accountID, startOfUTCDay(now), tx)
		if err != nil {
			return fmt.Errorf("sum withdrawals: %w", err)
		}
		if used+req.Amount > s.cfg.DailyWithdrawalLimit {
			return &model.LimitError{
				Err:       model.ErrDailyLimitExceeded,
				Limit:     s.cfg.DailyWithdrawalLimit,
				Used:      used,
				Requested: req.Amount,
			}
		}

		if _, err := s.ledger.DebitTx(ctx, account, req.Amount, model.KindWithdrawalHold, request.ID, tx); err != nil {
			return err
		}
		if err := s.settlementRepo.InsertRequest(ctx, request, tx); err != nil {
			return fmt.Errorf("insert settlement request: %w", err)
		}
		return s.notify(ctx, model.TopicSettlementSubmitted, request, tx)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordSettlement(request.Direction.String(), request.Status.String())
	s.logger.Info().
		Str("request_id", request.ID).
		Int64("account_id", accountID).
		Int64("amount", request.Amount).
		Msg("withdrawal submitted, funds held")
	return &model.SettlementResponse{RequestID: request.ID, Status: request.Status.String()}, nil
}

func (s *SettlementServiceImpl) ClaimForReview(ctx context.Context, requestID, reviewerID string) (*model.ReviewResponse, error) {
	resp := &model.ReviewResponse{RequestID: requestID}
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		req, err := s.settlementRepo.GetRequestForUpdate(ctx, requestID, tx)
		if err != nil {
			return fmt.Errorf("get settlement request for update: %w", err)
		}
		if req.Status == model.StatusUnderReview && req.ReviewerID != nil && *req.ReviewerID == reviewerID {
			resp.NewStatus = req.Status.String()
			resp.AlreadyApplied = true
			return nil
		}

		next, err := model.NextSettlementStatus(req.Status, model.ActionClaim)
		if err != nil {
			return err
		}
		req.Status = next
		req.ReviewerID = &reviewerID
		if err := s.settlementRepo.UpdateRequest(ctx, req, tx); err != nil {
			return fmt.Errorf("update settlement request: %w", err)
		}
		resp.NewStatus = next.String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", requestID).Str("reviewer_id", reviewerID).Msg("settlement claimed for review")
	return resp, nil
}

// Review locks the request and then the account; every writer takes them in that order.
func (s *SettlementServiceImpl) Review(ctx context.Context, requestID, reviewerID string, decision model.ReviewDecision, notes string) (*model.ReviewResponse, error) {
	if _, err := model.ParseReviewDecision(string(decision)); err != nil {
		return nil, err
	}

	resp := &model.ReviewResponse{RequestID: requestID}
	var (
		accountID int64
		direction model.Direction
	)
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		req, err := s.settlementRepo.GetRequestForUpdate(ctx, requestID, tx)
		if err != nil {
			return fmt.Errorf("get settlement request for update: %w", err)
		}
		accountID, direction = req.AccountID, req.Direction

		if decided(req, decision) {
			resp.NewStatus = req.Status.String()
			resp.AlreadyApplied = true
			return nil
		}

		from := req.Status
		if from == model.StatusSubmitted {
			if from, err = model.NextSettlementStatus(from, model.ActionClaim); err != nil {
				return err
			}
		}
		next, err := model.NextSettlementStatus(from, decision.Action())
		if err != nil {
			return err
		}

		account, err := s.accountRepo.GetAccountForUpdate(ctx, req.AccountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}

		topic := model.TopicSettlementRejected
		switch {
		case decision == model.DecisionApprove && req.Direction == model.DirectionDeposit:
			if account.SettlementFrozen {
				return fmt.Errorf("%w: settlement frozen for account %d", model.ErrLedgerCorruption, account.ID)
			}
			if _, err := s.ledger.ReconcileTx(ctx, account, tx); err != nil {
				return err
			}
			if _, err := s.ledger.CreditTx(ctx, account, req.Amount, model.KindDeposit, req.ID, tx); err != nil {
				return err
			}
			// approved passes straight through to settled
			if next, err = model.NextSettlementStatus(next, model.ActionSettle); err != nil {
				return err
			}
			topic = model.TopicSettlementApproved
		case decision == model.DecisionApprove:
			if account.SettlementFrozen {
				return fmt.Errorf("%w: settlement frozen for account %d", model.ErrLedgerCorruption, account.ID)
			}
			topic = model.TopicSettlementApproved
		case req.Direction == model.DirectionWithdrawal:
			if _, err := s.ledger.CreditTx(ctx, account, req.Amount, model.KindWithdrawalRelease, req.ID, tx); err != nil {
				return err
			}
		}

		req.ReviewerID = &reviewerID
		req.ReviewNotes = notes
		if err := s.finish(ctx, req, next, topic, tx); err != nil {
			return err
		}
		resp.NewStatus = next.String()
		return nil
	})

	var corrupt *model.CorruptionError
	if errors.As(err, &corrupt) {
		if freezeErr := s.ledger.Freeze(ctx, accountID, corrupt.Error()); freezeErr != nil {
			s.logger.Error().Err(freezeErr).Int64("account_id", accountID).Msg("failed to freeze settlement")
		}
	}
	if err != nil {
		return nil, err
	}

	if !resp.AlreadyApplied {
		metrics.RecordSettlement(direction.String(), resp.NewStatus)
	}
	s.logger.Info().
		Str("request_id", requestID).
		Str("reviewer_id", reviewerID).
		Str("decision", string(decision)).
		Str("new_status", resp.NewStatus).
		Bool("already_applied", resp.AlreadyApplied).
		Msg("settlement reviewed")
	return resp, nil
}

// decided reports whether the request already reflects decision.
func decided(req *model.SettlementRequest, decision model.ReviewDecision) bool {
	if decision == model.DecisionReject {
		return req.Status == model.StatusRejected
	}
	if req.Direction == model.DirectionDeposit {
		return req.Status == model.StatusSettled
	}
	return req.Status == model.StatusApproved || req.Status == model.StatusSettled
}

func (s *SettlementServiceImpl) ConfirmPayout(ctx context.Context, requestID, reviewerID, transferRef string) (*model.ReviewResponse, error) {
	resp := &model.ReviewResponse{RequestID: requestID}
	var amount int64
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		req, err := s.settlementRepo.GetRequestForUpdate(ctx, requestID, tx)
		if err != nil {
			return fmt.Errorf("get settlement request for update: %w", err)
		}
		if req.Direction != model.DirectionWithdrawal {
			return fmt.Errorf("%w: only withdrawals are paid out", model.ErrInvalidStateTransition)
		}
		if req.Status == model.StatusSettled {
			resp.NewStatus = req.Status.String()
			resp.AlreadyApplied = true
			return nil
		}

		next, err := model.NextSettlementStatus(req.Status, model.ActionSettle)
		if err != nil {
			return err
		}

		account, err := s.accountRepo.GetAccountForUpdate(ctx, req.AccountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if account.SettlementFrozen {
			return fmt.Errorf("%w: settlement frozen for account %d", model.ErrLedgerCorruption, account.ID)
		}
		if _, err := s.ledger.SettleWithdrawalTx(ctx, account, req.Amount, req.ID, tx); err != nil {
			return err
		}

		amount = req.Amount
		req.TransferRef = transferRef
		if err := s.finish(ctx, req, next, model.TopicSettlementSettled, tx); err != nil {
			return err
		}
		resp.NewStatus = next.String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !resp.AlreadyApplied {
		metrics.RecordSettlement(model.DirectionWithdrawal.String(), resp.NewStatus)
		s.logger.Info().
			Str("request_id", requestID).
			Str("reviewer_id", reviewerID).
			Str("transfer_ref", transferRef).
			Int64("amount", amount).
			Msg("withdrawal paid out")
	}
	return resp, nil
}

// Cancel hides requests of other accounts behind ErrSettlementNotFound.
func (s *SettlementServiceImpl) Cancel(ctx context.Context, requestID string, accountID int64) (*model.ReviewResponse, error) {
	resp := &model.ReviewResponse{RequestID: requestID}
	var direction model.Direction
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		req, err := s.settlementRepo.GetRequestForUpdate(ctx, requestID, tx)
		if err != nil {
			return fmt.Errorf("get settlement request for update: %w", err)
		}
		if req.AccountID != accountID {
			return model.ErrSettlementNotFound
		}
		direction = req.Direction
		if req.Status == model.StatusCancelled {
			resp.NewStatus = req.Status.String()
			resp.AlreadyApplied = true
			return nil
		}

		next, err := s.cancelTx(ctx, req, "cancelled by account holder", false, tx)
		if err != nil {
			return err
		}
		resp.NewStatus = next.String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !resp.AlreadyApplied {
		metrics.RecordSettlement(direction.String(), resp.NewStatus)
		s.logger.Info().Str("request_id", requestID).Int64("account_id", accountID).Msg("settlement cancelled")
	}
	return resp, nil
}

// errAutoCancelFrozen keeps the sweeper from releasing holds on a frozen account.
var errAutoCancelFrozen = errors.New("settlement frozen, auto-cancel skipped")

// cancelTx cancels a locked request and releases the hold of a withdrawal.
// Automated cancels leave frozen accounts untouched for a human to resolve.
func (s *SettlementServiceImpl) cancelTx(ctx context.Context, req *model.SettlementRequest, notes string, automated bool, tx pgx.Tx) (model.SettlementStatus, error) {
	next, err := model.NextSettlementStatus(req.Status, model.ActionCancel)
	if err != nil {
		return req.Status, err
	}

	if req.Direction == model.DirectionWithdrawal {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, req.AccountID, tx)
		if err != nil {
			return req.Status, fmt.Errorf("get account for update: %w", err)
		}
		if automated && account.SettlementFrozen {
			return req.Status, errAutoCancelFrozen
		}
		if _, err := s.ledger.CreditTx(ctx, account, req.Amount, model.KindWithdrawalRelease, req.ID, tx); err != nil {
			return req.Status, err
		}
	}

	req.ReviewNotes = notes
	if err := s.finish(ctx, req, next, model.TopicSettlementCancelled, tx); err != nil {
		return req.Status, err
	}
	return next, nil
}

// finish persists the new status and enqueues its event in the same transaction.
func (s *SettlementServiceImpl) finish(ctx context.Context, req *model.SettlementRequest, next model.SettlementStatus, topic string, tx pgx.Tx) error {
	req.Status = next
	if next.Terminal() {
		now := s.now()
		req.ResolvedAt = &now
	}
	if err := s.settlementRepo.UpdateRequest(ctx, req, tx); err != nil {
		return fmt.Errorf("update settlement request: %w", err)
	}
	return s.notify(ctx, topic, req, tx)
}

func (s *SettlementServiceImpl) notify(ctx context.Context, topic string, req *model.SettlementRequest, tx pgx.Tx) error {
	event := &model.SettlementEvent{
		RequestID: req.ID,
		AccountID: req.AccountID,
		Direction: req.Direction,
		Amount:    req.Amount,
		Status:    req.Status,
		Notes:     req.ReviewNotes,
		At:        s.now(),
	}
	if req.ReviewerID != nil {
		event.ReviewerID = *req.ReviewerID
	}
	return enqueueEvent(ctx, s.outboxRepo, topic, req.ID, event, tx)
}

func (s *SettlementServiceImpl) GetRequest(ctx context.Context, requestID string) (*model.SettlementRequest, error) {
	req, err := s.settlementRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get settlement request: %w", err)
	}
	return req, nil
}

func (s *SettlementServiceImpl) ListByAccount(ctx context.Context, accountID int64, limit, offset int) (*model.SettlementListResponse, error) {
	reqs, total, err := s.settlementRepo.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list settlement requests: %w", err)
	}
	return &model.SettlementListResponse{Requests: reqs, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *SettlementServiceImpl) ListByStatus(ctx context.Context, status model.SettlementStatus, limit, offset int) (*model.SettlementListResponse, error) {
	reqs, total, err := s.settlementRepo.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list settlement requests: %w", err)
	}
	return &model.SettlementListResponse{Requests: reqs, Total: total, Limit: limit, Offset: offset}, nil
}

// AutoCancelStale cancels withdrawals nobody claimed within SETTLEMENT_AUTO_CANCEL_AFTER.
// Requests under review are never touched.
func (s *SettlementServiceImpl) AutoCancelStale(ctx context.Context) (int, error) {
	if s.cfg.AutoCancelAfter <= 0 {
		return 0, nil
	}
	var cancelledCount int

	cutoff := s.now().Add(-s.cfg.AutoCancelAfter)
	stale, err := s.settlementRepo.ListStaleWithdrawals(ctx, cutoff, sweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list stale settlements: %w", err)
	}

	if len(stale) == 0 {
		s.logger.Debug().Msg("no stale withdrawals to cancel")
		return 0, nil
	}

	// Each request in its own transaction
	for _, item := range stale {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return cancelledCount, ctx.Err()
		default:
		}

		var cancelled bool
		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			req, err := s.settlementRepo.GetRequestForUpdate(ctx, item.ID, tx)
			if err != nil {
				return fmt.Errorf("get settlement request for update: %w", err)
			}
			if req.Status != model.StatusSubmitted {
				s.logger.Debug().Str("request_id", req.ID).Str("status", req.Status.String()).Msg("settlement already claimed or resolved")
				return nil
			}

			if _, err := s.cancelTx(ctx, req, fmt.Sprintf("auto-cancelled after %s without review", s.cfg.AutoCancelAfter), true, tx); err != nil {
				return err
			}
			cancelled = true
			return nil
		})

		switch {
		case errors.Is(err, errAutoCancelFrozen):
			s.logger.Warn().
				Str("request_id", item.ID).
				Int64("account_id", item.AccountID).
				Msg("settlement frozen, auto-cancel skipped")
		case err != nil:
			s.logger.Error().
				Err(err).
				Str("request_id", item.ID).
				Int64("account_id", item.AccountID).
				Msg("failed to auto-cancel withdrawal")
		}
		if cancelled {
			metrics.RecordSettlement(item.Direction.String(), model.StatusCancelled.String())
			cancelledCount++
		}
	}

	s.logger.Info().
		Int("requested", len(stale)).
		Int("cancelled", cancelledCount).
		Msg("stale withdrawal cancellation completed")

	return cancelledCount, nil
}

// RemindPending emits one reminder per request, on the first sweep after it crosses
// SETTLEMENT_REMINDER_AFTER.
func (s *SettlementServiceImpl) RemindPending(ctx context.Context) (int, error) {
	if s.cfg.ReminderAfter <= 0 || s.cfg.SweepInterval <= 0 {
		return 0, nil
	}

	to := s.now().Add(-s.cfg.ReminderAfter)
	from := to.Add(-s.cfg.SweepInterval)
	pending, err := s.settlementRepo.ListPendingCreated(ctx,
		[]model.SettlementStatus{model.StatusSubmitted, model.StatusUnderReview}, from, to, sweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list pending settlements: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, req := range pending {
			if err := s.notify(ctx, model.TopicSettlementReminder, req, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int("reminded", len(pending)).Msg("pending settlement reminders queued")
	return len(pending), nil
}
