package model

import "fmt"

type EntryKind string

const (
	KindSpinDebit         EntryKind = "spin_debit"
	KindSpinCredit        EntryKind = "spin_credit"
	KindDeposit           EntryKind = "deposit"
	KindWithdrawalHold    EntryKind = "withdrawal_hold"
	KindWithdrawalRelease EntryKind = "withdrawal_release"
	KindWithdrawalSettle  EntryKind = "withdrawal_settle"
	KindAdjustment        EntryKind = "adjustment"
)

func ParseEntryKind(s string) (EntryKind, error) {
	switch k := EntryKind(s); k {
	case KindSpinDebit, KindSpinCredit, KindDeposit, KindWithdrawalHold,
		KindWithdrawalRelease, KindWithdrawalSettle, KindAdjustment:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

// IsDebit reports whether entries of this kind remove funds from the available balance.
func (k EntryKind) IsDebit() bool {
	return k == KindSpinDebit || k == KindWithdrawalHold
}

func (k EntryKind) String() string {
	return string(k)
}

type AccountStatus string

const (
	AccountActive      AccountStatus = "active"
	AccountDeactivated AccountStatus = "deactivated"
)

type Direction string

const (
	DirectionDeposit    Direction = "deposit"
	DirectionWithdrawal Direction = "withdrawal"
)

func (d Direction) String() string {
	return string(d)
}

type SettlementStatus string

const (
	StatusSubmitted   SettlementStatus = "submitted"
	StatusUnderReview SettlementStatus = "under_review"
	StatusApproved    SettlementStatus = "approved"
	StatusSettled     SettlementStatus = "settled"
	StatusRejected    SettlementStatus = "rejected"
	StatusCancelled   SettlementStatus = "cancelled"
)

func ParseSettlementStatus(s string) (SettlementStatus, error) {
	switch st := SettlementStatus(s); st {
	case StatusSubmitted, StatusUnderReview, StatusApproved, StatusSettled, StatusRejected, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("unknown settlement status %q", s)
	}
}

// Terminal statuses never transition again.
func (s SettlementStatus) Terminal() bool {
	return s == StatusSettled || s == StatusRejected || s == StatusCancelled
}

func (s SettlementStatus) String() string {
	return string(s)
}

// SettlementAction drives NextSettlementStatus.
type SettlementAction string

const (
	ActionClaim   SettlementAction = "claim"
	ActionApprove SettlementAction = "approve"
	ActionReject  SettlementAction = "reject"
	ActionSettle  SettlementAction = "settle"
	ActionCancel  SettlementAction = "cancel"
)

// NextSettlementStatus computes the status after applying action to cur.
//
//	submitted    --claim-->   under_review
//	under_review --approve--> approved
//	approved     --settle-->  settled
//	under_review --reject-->  rejected
//	submitted    --cancel-->  cancelled     (also from under_review)
//
// Decisions are only taken from under_review; a reviewer deciding an unclaimed
// request claims it first.
func NextSettlementStatus(cur SettlementStatus, action SettlementAction) (SettlementStatus, error) {
	switch cur {
	case StatusSubmitted:
		switch action {
		case ActionClaim:
			return StatusUnderReview, nil
		case ActionCancel:
			return StatusCancelled, nil
		}
	case StatusUnderReview:
		switch action {
		case ActionApprove:
			return StatusApproved, nil
		case ActionReject:
			return StatusRejected, nil
		case ActionCancel:
			return StatusCancelled, nil
		}
	case StatusApproved:
		if action == ActionSettle {
			return StatusSettled, nil
		}
	}
	return cur, fmt.Errorf("%w: %s --%s--> ?", ErrInvalidStateTransition, cur, action)
}

type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

func ParseReviewDecision(s string) (ReviewDecision, error) {
	switch d := ReviewDecision(s); d {
	case DecisionApprove, DecisionReject:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

// Action maps the decision onto the settlement state machine.
func (d ReviewDecision) Action() SettlementAction {
	if d == DecisionApprove {
		return ActionApprove
	}
	return ActionReject
}

// Outbox topics.
const (
	TopicSpinResolved        = "spin_resolved"
	TopicLargeWin            = "large_win"
	TopicSettlementSubmitted = "settlement_submitted"
	TopicSettlementApproved  = "settlement_approved"
	TopicSettlementRejected  = "settlement_rejected"
	TopicSettlementSettled   = "settlement_settled"
	TopicSettlementCancelled = "settlement_cancelled"
	TopicSettlementReminder  = "settlement_reminder"
	TopicFairnessViolation   = "fairness_violation"
)

type OutboxStatus int16

const (
	OutboxPending OutboxStatus = 1
	OutboxSent    OutboxStatus = 2
	OutboxFailed  OutboxStatus = 3
)

type Role string

const (
	RolePlayer   Role = "player"
	RoleReviewer Role = "reviewer"
	RoleAdmin    Role = "admin"
)
