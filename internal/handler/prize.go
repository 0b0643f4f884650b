package handler

import (
	"net/http"
	"strconv"
	"wager-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// GetPrizeTable
// @Summary Active prize table
// @Tags prizes
// @Produce json
// @Success 200 {object} model.PrizeTableResponse
// @Router /prizes/table [get]
func (h *Handler) GetPrizeTable(c *gin.Context) {
	c.JSON(http.StatusOK, h.prizeService.Current())
}

// UpdatePrizeWeights
// @Summary Update prize weights
// @Description Stores a new table version with the same payouts. Weights are decimal strings summing to 1.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param weights body model.UpdateWeightsRequest true "One weight per prize"
// @Success 200 {object} model.PrizeTableResponse
// @Failure 400 {object} model.ErrorResponse "Invalid configuration"
// @Router /admin/prizes/weights [put]
func (h *Handler) UpdatePrizeWeights(c *gin.Context) {
	var req model.UpdateWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.prizeService.UpdateWeights(c.Request.Context(), req.Weights, claimsFrom(c).Actor())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetExpectedProfit
// @Summary Expected house profit
// @Description Reporting only, never used to settle.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param spins query int true "Number of spins"
// @Success 200 {object} model.ProfitResponse
// @Router /admin/prizes/profit [get]
func (h *Handler) GetExpectedProfit(c *gin.Context) {
	spins, err := strconv.ParseInt(c.Query("spins"), 10, 64)
	if err != nil || spins < 0 {
		badRequest(c, "spins must be a non-negative integer")
		return
	}
	c.JSON(http.StatusOK, h.prizeService.ExpectedProfit(spins))
}
