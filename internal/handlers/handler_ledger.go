package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
	"github.com/scrapline/junkshop_backoffice/internal/middleware"
)

// ledgerHandler handles HTTP requests that record or read transactions.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to transaction recording.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/expense", h.recordExpense)
		transactions.POST("/loan", h.recordLoan)
		transactions.POST("/repayment", h.recordRepayment)
		transactions.POST("/sale", h.recordSale)
		transactions.POST("/purchase", h.recordPurchase)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
	}

	rg.GET("/branches/:id/transactions", h.listBranchTransactions)
}

// respondLedgerError maps service errors of the recording endpoints to HTTP codes.
func respondLedgerError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoActiveShift):
		logger.Warn("No active shift for "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Dependency not found on "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// recordExpense godoc
// @Summary Record an expense
// @Description Records an expense against the caller's active shift
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   expense body dto.RecordExpenseRequest true "Expense details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "No active shift"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /transactions/expense [post]
func (h *ledgerHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", req.BranchID), slog.String("user_id", req.UserID))
	logger.Info("Received request to record expense", slog.String("amount", req.TotalAmount.String()))

	txn, err := h.ledgerService.RecordExpense(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "record expense")
		return
	}

	logger.Info("Expense recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// recordLoan godoc
// @Summary Record a loan
// @Description Records a cash loan to an employee or seller resolved by name
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   loan body dto.RecordLoanRequest true "Loan details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 409 {object} map[string]string "No active shift"
// @Failure 500 {object} map[string]string "Failed to record loan"
// @Router /transactions/loan [post]
func (h *ledgerHandler) recordLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", req.BranchID), slog.String("party_name", req.PartyName))
	logger.Info("Received request to record loan", slog.String("amount", req.TotalAmount.String()))

	txn, err := h.ledgerService.RecordLoan(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "record loan")
		return
	}

	logger.Info("Loan recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// recordRepayment godoc
// @Summary Record a loan repayment
// @Description Records a repayment from an employee or seller, reversing the loan's cash effect
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   repayment body dto.RecordLoanRequest true "Repayment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 409 {object} map[string]string "No active shift"
// @Failure 500 {object} map[string]string "Failed to record repayment"
// @Router /transactions/repayment [post]
func (h *ledgerHandler) recordRepayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordRepayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", req.BranchID), slog.String("party_name", req.PartyName))
	logger.Info("Received request to record repayment", slog.String("amount", req.TotalAmount.String()))

	txn, err := h.ledgerService.RecordRepayment(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "record repayment")
		return
	}

	logger.Info("Repayment recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// recordSale godoc
// @Summary Record a sale
// @Description Records a sale with its line items against the caller's active shift
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   sale body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "No active shift"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Router /transactions/sale [post]
func (h *ledgerHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", req.BranchID), slog.String("user_id", req.UserID))
	logger.Info("Received request to record sale", slog.String("amount", req.TotalAmount.String()), slog.Int("line_items", len(req.Items)))

	txn, err := h.ledgerService.RecordSale(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "record sale")
		return
	}

	logger.Info("Sale recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// recordPurchase godoc
// @Summary Record a purchase
// @Description Records a scrap purchase with its line items; only a completed purchase moves the running total
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   purchase body dto.RecordPurchaseRequest true "Purchase details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "No active shift"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Router /transactions/purchase [post]
func (h *ledgerHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", req.BranchID), slog.String("user_id", req.UserID))
	logger.Info("Received request to record purchase", slog.String("amount", req.TotalAmount.String()), slog.Int("line_items", len(req.Items)))

	txn, err := h.ledgerService.RecordPurchase(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "record purchase")
		return
	}

	logger.Info("Purchase recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a transaction together with its line items
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.GetTransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	logger = logger.With(slog.String("transaction_id", transactionID))

	txn, items, err := h.ledgerService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.GetTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Items:       dto.ToTransactionItemResponses(items),
	})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update; a supplied totalAmount accumulates onto the stored amount
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   update body dto.UpdateTransactionRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{id} [put]
func (h *ledgerHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID))
	logger.Info("Received request to update transaction")

	if err := h.ledgerService.UpdateTransaction(c.Request.Context(), transactionID, req); err != nil {
		respondLedgerError(c, logger, err, "update transaction")
		return
	}

	logger.Info("Transaction updated successfully")
	c.Status(http.StatusNoContent)
}

// listBranchTransactions godoc
// @Summary List transactions for a branch
// @Description Retrieves a paginated transaction listing ordered newest first
// @Tags transactions
// @Produce  json
// @Param   id path string true "Branch ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /branches/{id}/transactions [get]
func (h *ledgerHandler) listBranchTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("id")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", branchID))

	resp, err := h.ledgerService.ListTransactionsByBranch(c.Request.Context(), branchID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(resp.Transactions)))
	c.JSON(http.StatusOK, resp)
}
