package handler

import (
	"net/http"
	"wager-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// Spin
// @Summary Spin the wheel
// @Description Debits the spin cost and credits the prize in one ledger operation. An omitted client seed is generated, an omitted nonce is assigned.
// @Tags spins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param spin body model.SpinRequest false "Client seed and nonce"
// @Success 201 {object} model.SpinResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient funds or invalid seed"
// @Failure 409 {object} model.ErrorResponse "Duplicate nonce"
// @Failure 429 {object} model.ErrorResponse "Cooldown active"
// @Router /spins [post]
func (h *Handler) Spin(c *gin.Context) {
	accountID, ok := callerAccount(c)
	if !ok {
		return
	}

	var req model.SpinRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
	}

	resp, err := h.spinService.Spin(c.Request.Context(), accountID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSpins
// @Summary List own spins
// @Tags spins
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.SpinListResponse
// @Router /spins [get]
func (h *Handler) ListSpins(c *gin.Context) {
	accountID, ok := callerAccount(c)
	if !ok {
		return
	}
	limit, offset := pagination(c)

	resp, err := h.spinService.ListSpins(c.Request.Context(), accountID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSpin
// @Summary Get a spin
// @Tags spins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spin ID"
// @Success 200 {object} model.SpinRecord
// @Failure 404 {object} model.ErrorResponse "Spin not found"
// @Router /spins/{id} [get]
func (h *Handler) GetSpin(c *gin.Context) {
	spin, err := h.spinService.GetSpin(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !canSee(c, spin.AccountID) {
		h.handleError(c, model.ErrSpinNotFound)
		return
	}
	c.JSON(http.StatusOK, spin)
}

// VerifySpin
// @Summary Verify a spin
// @Description Recomputes the outcome from the revealed server seed. Available once the spin's epoch has ended.
// @Tags fairness
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spin ID"
// @Success 200 {object} model.VerificationResponse
// @Failure 404 {object} model.ErrorResponse "Spin not found"
// @Failure 409 {object} model.ErrorResponse "Seed not revealed or fairness violation"
// @Router /spins/{id}/verify [get]
func (h *Handler) VerifySpin(c *gin.Context) {
	ctx := c.Request.Context()
	spin, err := h.spinService.GetSpin(ctx, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !canSee(c, spin.AccountID) {
		h.handleError(c, model.ErrSpinNotFound)
		return
	}

	resp, err := h.fairnessService.VerifySpin(ctx, spin.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
