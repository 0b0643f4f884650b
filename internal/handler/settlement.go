package handler

import (
	"net/http"
	"wager-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// RequestDeposit
// @Summary Submit a deposit
// @Description Queues a deposit for manual review. The balance changes only on approval.
// @Tags settlements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deposit body model.DepositRequest true "Amount in minor units and payment evidence"
// @Success 201 {object} model.SettlementResponse
// @Failure 400 {object} model.ErrorResponse "Below minimum"
// @Router /settlements/deposits [post]
func (h *Handler) RequestDeposit(c *gin.Context) {
	accountID, ok := callerAccount(c)
	if !ok {
		return
	}

	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.settlementService.RequestDeposit(c.Request.Context(), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RequestWithdrawal
// @Summary Submit a withdrawal
// @Description Holds the amount immediately and queues the request for review.
// @Tags settlements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawal body model.WithdrawalRequest true "Amount in minor units and payout destination"
// @Success 201 {object} model.SettlementResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient funds, below minimum or daily limit exceeded"
// @Failure 423 {object} model.ErrorResponse "Settlement halted"
// @Router /settlements/withdrawals [post]
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	accountID, ok := callerAccount(c)
	if !ok {
		return
	}

	var req model.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.settlementService.RequestWithdrawal(c.Request.Context(), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSettlements
// @Summary List own settlement requests
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.SettlementListResponse
// @Router /settlements [get]
func (h *Handler) ListSettlements(c *gin.Context) {
	accountID, ok := callerAccount(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	resp, err := h.settlementService.ListByAccount(c.Request.Context(), accountID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSettlement
// @Summary Get a settlement request
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.SettlementRequest
// @Failure 404 {object} model.ErrorResponse "Request not found"
// @Router /settlements/{id} [get]
func (h *Handler) GetSettlement(c *gin.Context) {
	req, err := h.settlementService.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !canSee(c, req.AccountID) {
		h.handleError(c, model.ErrSettlementNotFound)
		return
	}
	c.JSON(http.StatusOK, req)
}

// CancelSettlement
// @Summary Cancel an own request
// @Description Cancels a request that has not been approved yet. A withdrawal hold is released.
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.ReviewResponse
// @Failure 404 {object} model.ErrorResponse "Request not found"
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /settlements/{id}/cancel [post]
func (h *Handler) CancelSettlement(c *gin.Context) {
	accountID, ok := callerAccount(c)
	if !ok {
		return
	}

	resp, err := h.settlementService.Cancel(c.Request.Context(), c.Param("id"), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSettlementsByStatus
// @Summary Review queue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" default(submitted)
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.SettlementListResponse
// @Router /admin/settlements [get]
func (h *Handler) ListSettlementsByStatus(c *gin.Context) {
	status, err := model.ParseSettlementStatus(c.DefaultQuery("status", string(model.StatusSubmitted)))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	limit, offset := pagination(c)

	resp, err := h.settlementService.ListByStatus(c.Request.Context(), status, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClaimSettlement
// @Summary Claim a request for review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.ReviewResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /admin/settlements/{id}/claim [post]
func (h *Handler) ClaimSettlement(c *gin.Context) {
	resp, err := h.settlementService.ClaimForReview(c.Request.Context(), c.Param("id"), claimsFrom(c).Actor())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReviewSettlement
// @Summary Approve or reject a request
// @Description Repeating the decision already applied is a no-op.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param review body model.ReviewRequest true "Decision"
// @Success 200 {object} model.ReviewResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Failure 423 {object} model.ErrorResponse "Settlement halted"
// @Router /admin/settlements/{id}/review [post]
func (h *Handler) ReviewSettlement(c *gin.Context) {
	var req model.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	decision, err := model.ParseReviewDecision(req.Decision)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.settlementService.Review(c.Request.Context(), c.Param("id"), claimsFrom(c).Actor(), decision, req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmPayout
// @Summary Confirm a withdrawal transfer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param payout body model.ConfirmPayoutRequest true "External transfer reference"
// @Success 200 {object} model.ReviewResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state transition"
// @Router /admin/settlements/{id}/confirm [post]
func (h *Handler) ConfirmPayout(c *gin.Context) {
	var req model.ConfirmPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.settlementService.ConfirmPayout(c.Request.Context(), c.Param("id"), claimsFrom(c).Actor(), req.TransferRef)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
