package handler

import (
	"net/http"
	"wager-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// GetBalance
// @Summary Get own balance
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /accounts/me/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	accountID, ok := callerAccount(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEntries
// @Summary List own ledger entries
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.LedgerListResponse
// @Router /accounts/me/entries [get]
func (h *Handler) ListEntries(c *gin.Context) {
	accountID, ok := callerAccount(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), accountID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAccount
// @Summary Open an account
// @Description Called by the registration service once identity checks pass.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param account body model.CreateAccountRequest true "Account ID"
// @Success 201 {object} model.Account
// @Failure 409 {object} model.ErrorResponse "Account exists"
// @Router /admin/accounts [post]
func (h *Handler) CreateAccount(c *gin.Context) {
	var req model.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	account, err := h.ledgerService.CreateAccount(c.Request.Context(), req.AccountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// GetAccountBalance
// @Summary Get any account's balance
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /admin/accounts/{id}/balance [get]
func (h *Handler) GetAccountBalance(c *gin.Context) {
	accountID, ok := pathAccountID(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReconcileAccount
// @Summary Reconcile an account
// @Description Recomputes the balance from the ledger. A mismatch halts settlement for the account.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} model.Reconciliation
// @Failure 423 {object} model.ErrorResponse "Ledger corruption"
// @Router /admin/accounts/{id}/reconcile [post]
func (h *Handler) ReconcileAccount(c *gin.Context) {
	accountID, ok := pathAccountID(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.Reconcile(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdjustAccount
// @Summary Post an operator adjustment
// @Description Signed correction recorded as its own ledger entry. The reference makes it idempotent.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Param adjustment body model.AdjustmentRequest true "Signed amount and reference"
// @Success 201 {object} model.LedgerEntry
// @Failure 400 {object} model.ErrorResponse "Insufficient funds"
// @Failure 409 {object} model.ErrorResponse "Reference reused"
// @Router /admin/accounts/{id}/adjustments [post]
func (h *Handler) AdjustAccount(c *gin.Context) {
	accountID, ok := pathAccountID(c)
	if !ok {
		return
	}

	var req model.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	entry, err := h.ledgerService.Adjust(c.Request.Context(), accountID, req.Amount, req.Reference)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Warn().
		Int64("account_id", accountID).
		Int64("amount", req.Amount).
		Str("reference", req.Reference).
		Str("actor", claimsFrom(c).Actor()).
		Str("notes", req.Notes).
		Msg("ledger adjustment posted")
	c.JSON(http.StatusCreated, entry)
}

// UnfreezeAccount
// @Summary Resume settlement
// @Description Succeeds only when the account reconciles cleanly.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} model.Reconciliation
// @Failure 423 {object} model.ErrorResponse "Still inconsistent"
// @Router /admin/accounts/{id}/unfreeze [post]
func (h *Handler) UnfreezeAccount(c *gin.Context) {
	accountID, ok := pathAccountID(c)
	if !ok {
		return
	}

	resp, err := h.ledgerService.Unfreeze(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Warn().Int64("account_id", accountID).Str("actor", claimsFrom(c).Actor()).Msg("settlement unfrozen")
	c.JSON(http.StatusOK, resp)
}
