package handler

import (
	"net/http"
	"strconv"
	"wager-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

const maxFeedItems = 50

// GetCurrentEpoch
// @Summary Current seed commitment
// @Tags fairness
// @Produce json
// @Success 200 {object} model.EpochResponse
// @Router /fairness/epochs/current [get]
func (h *Handler) GetCurrentEpoch(c *gin.Context) {
	resp, err := h.fairnessService.CurrentEpoch(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetEpoch
// @Summary Seed epoch
// @Description The server seed is included once the epoch has ended.
// @Tags fairness
// @Produce json
// @Param epoch path int true "Epoch number"
// @Success 200 {object} model.EpochResponse
// @Failure 404 {object} model.ErrorResponse "Epoch not found"
// @Router /fairness/epochs/{epoch} [get]
func (h *Handler) GetEpoch(c *gin.Context) {
	epoch, err := strconv.ParseInt(c.Param("epoch"), 10, 64)
	if err != nil {
		badRequest(c, "epoch must be an integer")
		return
	}

	resp, err := h.fairnessService.GetEpoch(c.Request.Context(), epoch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify
// @Summary Recompute an outcome
// @Description Recomputes the draw and prize from caller supplied inputs and a stored table version.
// @Tags fairness
// @Accept json
// @Produce json
// @Param verify body model.VerifyRequest true "Inputs"
// @Success 200 {object} model.VerificationResponse
// @Failure 404 {object} model.ErrorResponse "Prize table not found"
// @Router /fairness/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	var req model.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.fairnessService.Verify(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetLargeWins
// @Summary Recent large wins
// @Tags fairness
// @Produce json
// @Param limit query int false "Limit" default(10)
// @Success 200 {array} model.LargeWin
// @Router /feed/large-wins [get]
func (h *Handler) GetLargeWins(c *gin.Context) {
	n, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || n <= 0 {
		n = 10
	}
	if n > maxFeedItems {
		n = maxFeedItems
	}

	wins, err := h.feed.Recent(c.Request.Context(), n)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if wins == nil {
		wins = []*model.LargeWin{}
	}
	c.JSON(http.StatusOK, wins)
}
