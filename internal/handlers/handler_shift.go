package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
	"github.com/scrapline/junkshop_backoffice/internal/middleware"
)

// shiftHandler handles HTTP requests related to shifts.
type shiftHandler struct {
	shiftService  portssvc.ShiftSvcFacade
	ledgerService portssvc.LedgerReaderSvc
}

// newShiftHandler creates a new shiftHandler.
func newShiftHandler(ss portssvc.ShiftSvcFacade, ls portssvc.LedgerReaderSvc) *shiftHandler {
	return &shiftHandler{
		shiftService:  ss,
		ledgerService: ls,
	}
}

// registerShiftRoutes registers routes related to shifts.
func registerShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newShiftHandler(shiftService, ledgerService)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.openShift)
		shifts.GET("/active", h.listActiveShifts)
		shifts.GET("/:id", h.getShift)
		shifts.GET("/:id/transactions", h.listShiftTransactions)
		shifts.POST("/:id/close", h.closeShift)
		shifts.POST("/:id/capital", h.addCapital)
	}
}

// openShift godoc
// @Summary Open a new shift
// @Description Opens a cash shift for a branch and operator with a counted starting float
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shift body dto.OpenShiftRequest true "Shift details"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Branch already has an open shift"
// @Failure 500 {object} map[string]string "Failed to open shift"
// @Router /shifts [post]
func (h *shiftHandler) openShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", req.BranchID), slog.String("user_id", req.UserID))
	logger.Info("Received request to open shift")

	shift, err := h.shiftService.OpenShift(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Branch already has an open shift", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error opening shift", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to open shift in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open shift"})
		}
		return
	}

	logger.Info("Shift opened successfully", slog.String("shift_id", shift.ShiftID))
	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// getShift godoc
// @Summary Get a shift by ID
// @Description Retrieves details for a specific shift by its ID
// @Tags shifts
// @Produce  json
// @Param   id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 500 {object} map[string]string "Failed to retrieve shift"
// @Router /shifts/{id} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	logger = logger.With(slog.String("shift_id", shiftID))

	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else {
			logger.Error("Failed to get shift from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shift"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listActiveShifts godoc
// @Summary List the caller's open shifts
// @Description Retrieves the open shifts of a user joined with branch details
// @Tags shifts
// @Produce  json
// @Param   userID query string true "User ID"
// @Success 200 {array} dto.ActiveShiftResponse
// @Failure 400 {object} map[string]string "Missing userID"
// @Failure 500 {object} map[string]string "Failed to list active shifts"
// @Router /shifts/active [get]
func (h *shiftHandler) listActiveShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Query("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userID query parameter is required"})
		return
	}

	logger = logger.With(slog.String("user_id", userID))

	views, err := h.shiftService.GetActiveShiftsForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list active shifts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list active shifts"})
		return
	}

	responses := make([]dto.ActiveShiftResponse, len(views))
	for i, v := range views {
		responses[i] = dto.ToActiveShiftResponse(&v)
	}

	logger.Info("Active shifts listed successfully", slog.Int("count", len(responses)))
	c.JSON(http.StatusOK, responses)
}

// listShiftTransactions godoc
// @Summary List transactions of a shift
// @Description Retrieves every transaction recorded against a shift, oldest first
// @Tags shifts
// @Produce  json
// @Param   id path string true "Shift ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to list shift transactions"
// @Router /shifts/{id}/transactions [get]
func (h *shiftHandler) listShiftTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	logger = logger.With(slog.String("shift_id", shiftID))

	txns, err := h.ledgerService.ListTransactionsByShift(c.Request.Context(), shiftID)
	if err != nil {
		logger.Error("Failed to list shift transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shift transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nil))
}

// closeShift godoc
// @Summary Close a shift
// @Description Computes final cash from the running total and stamps the end timestamp; terminal
// @Tags shifts
// @Produce  json
// @Param   id path string true "Shift ID"
// @Success 200 {object} dto.CloseShiftResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to close shift"
// @Router /shifts/{id}/close [post]
func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	logger = logger.With(slog.String("shift_id", shiftID))
	logger.Info("Received request to close shift")

	resp, err := h.shiftService.CloseShift(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found for close")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Shift already closed", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to close shift in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close shift"})
		}
		return
	}

	logger.Info("Shift closed successfully", slog.String("final_cash", resp.FinalCash.String()))
	c.JSON(http.StatusOK, resp)
}

// addCapital godoc
// @Summary Add capital to an open shift
// @Description Injects cash into an open shift's float and records a capital_addition audit entry
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   id path string true "Shift ID"
// @Param   capital body dto.AddCapitalRequest true "Capital injection details"
// @Success 200 {object} dto.AddCapitalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Failure 500 {object} map[string]string "Failed to add capital"
// @Router /shifts/{id}/capital [post]
func (h *shiftHandler) addCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("id")

	var req dto.AddCapitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCapital", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("shift_id", shiftID), slog.String("amount", req.Amount.String()))
	logger.Info("Received request to add capital")

	resp, err := h.shiftService.AddCapital(c.Request.Context(), shiftID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding capital", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Shift not found for capital addition")
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Shift already closed", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add capital in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add capital"})
		}
		return
	}

	logger.Info("Capital added successfully", slog.String("added_capital", resp.AddedCapital.String()))
	c.JSON(http.StatusOK, resp)
}

// registerBranchShiftHistoryRoute registers the shift history listing under branches.
func registerBranchShiftHistoryRoute(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService, nil)
	rg.GET("/branches/:id/shifts", h.listBranchShifts)
}

// listBranchShifts godoc
// @Summary List shift history for a branch
// @Description Retrieves closed and open shifts of a branch, newest first
// @Tags shifts
// @Produce  json
// @Param   id path string true "Branch ID"
// @Param   limit query int false "Limit number of results" default(50)
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 500 {object} map[string]string "Failed to list shifts"
// @Router /branches/{id}/shifts [get]
func (h *shiftHandler) listBranchShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("id")

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	logger = logger.With(slog.String("branch_id", branchID))

	shifts, err := h.shiftService.ListShiftsByBranch(c.Request.Context(), branchID, limit)
	if err != nil {
		logger.Error("Failed to list shifts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListShiftsResponse(shifts))
}
