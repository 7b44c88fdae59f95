package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
	"github.com/scrapline/junkshop_backoffice/internal/middleware"
)

// balanceHandler handles HTTP requests for shift-scoped balance queries.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{
		balanceService: bs,
	}
}

// registerBalanceRoutes registers routes related to balances.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balances := rg.Group("/balances")
	{
		balances.GET("/expense", h.getExpenseBalance)
		balances.GET("/sale", h.getSaleBalance)
		balances.GET("/purchase", h.getPurchaseBalance)
		balances.GET("/cash", h.getCashBalance)
	}
}

// getSummedBalance binds the shared query parameters and serves one summed balance.
func (h *balanceHandler) getSummedBalance(c *gin.Context, kind string, sum func(ctx context.Context, branchID, userID string) (decimal.Decimal, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for balance", slog.String("kind", kind), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", params.BranchID), slog.String("user_id", params.UserID))

	total, err := sum(c.Request.Context(), params.BranchID, params.UserID)
	if err != nil {
		logger.Error("Failed to compute balance", slog.String("kind", kind), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute " + kind + " balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		BranchID: params.BranchID,
		UserID:   params.UserID,
		Total:    total,
	})
}

// getExpenseBalance godoc
// @Summary Get the expense balance of the active shift
// @Description Sums expense transactions of the caller's active shift; zero when none is open
// @Tags balances
// @Produce  json
// @Param   branchID query string true "Branch ID"
// @Param   userID query string true "User ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /balances/expense [get]
func (h *balanceHandler) getExpenseBalance(c *gin.Context) {
	h.getSummedBalance(c, "expense", h.balanceService.GetExpenseBalance)
}

// getSaleBalance godoc
// @Summary Get the sale balance of the active shift
// @Description Sums completed sale transactions of the caller's active shift; zero when none is open
// @Tags balances
// @Produce  json
// @Param   branchID query string true "Branch ID"
// @Param   userID query string true "User ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /balances/sale [get]
func (h *balanceHandler) getSaleBalance(c *gin.Context) {
	h.getSummedBalance(c, "sale", h.balanceService.GetSaleBalance)
}

// getPurchaseBalance godoc
// @Summary Get the purchase balance of the active shift
// @Description Sums completed purchase transactions of the caller's active shift; zero when none is open
// @Tags balances
// @Produce  json
// @Param   branchID query string true "Branch ID"
// @Param   userID query string true "User ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /balances/purchase [get]
func (h *balanceHandler) getPurchaseBalance(c *gin.Context) {
	h.getSummedBalance(c, "purchase", h.balanceService.GetPurchaseBalance)
}

// getCashBalance godoc
// @Summary Get the cash-on-hand of the active shift
// @Description Derives initial cash plus added capital minus the running total; zero-valued when no shift is open
// @Tags balances
// @Produce  json
// @Param   branchID query string true "Branch ID"
// @Param   userID query string true "User ID"
// @Success 200 {object} dto.CashBalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /balances/cash [get]
func (h *balanceHandler) getCashBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for cash balance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", params.BranchID), slog.String("user_id", params.UserID))

	resp, err := h.balanceService.GetCashBalance(c.Request.Context(), params.BranchID, params.UserID)
	if err != nil {
		logger.Error("Failed to compute cash balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cash balance"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
