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

// branchHandler handles HTTP requests related to branches.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

// newBranchHandler creates a new branchHandler.
func newBranchHandler(bs portssvc.BranchSvcFacade) *branchHandler {
	return &branchHandler{
		branchService: bs,
	}
}

// registerBranchRoutes registers routes related to branches.
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := newBranchHandler(branchService)

	branches := rg.Group("/branches")
	{
		branches.POST("", h.createBranch)
		branches.GET("", h.listBranches)
		branches.GET("/:id", h.getBranch)
		branches.PUT("/:id", h.updateBranch)
	}
}

// createBranch godoc
// @Summary Create a new branch
// @Description Creates a new branch location
// @Tags branches
// @Accept  json
// @Produce  json
// @Param   branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create branch"
// @Router /branches [post]
func (h *branchHandler) createBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBranch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create branch", slog.String("branch_name", req.Name))

	branch, err := h.branchService.CreateBranch(c.Request.Context(), req, callerUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating branch", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create branch in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create branch"})
		}
		return
	}

	logger.Info("Branch created successfully", slog.String("branch_id", branch.BranchID))
	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// getBranch godoc
// @Summary Get a branch by ID
// @Description Retrieves details for a specific branch by its ID
// @Tags branches
// @Produce  json
// @Param   id path string true "Branch ID"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} map[string]string "Branch not found"
// @Failure 500 {object} map[string]string "Failed to retrieve branch"
// @Router /branches/{id} [get]
func (h *branchHandler) getBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("id")

	logger = logger.With(slog.String("branch_id", branchID))

	branch, err := h.branchService.GetBranchByID(c.Request.Context(), branchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Branch not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		} else {
			logger.Error("Failed to get branch from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve branch"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// listBranches godoc
// @Summary List branches
// @Description Retrieves all branches; pass includeInactive=true to include deactivated ones
// @Tags branches
// @Produce  json
// @Param   includeInactive query bool false "Include inactive branches" default(false)
// @Success 200 {object} dto.ListBranchesResponse
// @Failure 500 {object} map[string]string "Failed to list branches"
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	branches, err := h.branchService.ListBranches(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list branches from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list branches"})
		return
	}

	logger.Info("Branches listed successfully", slog.Int("count", len(branches)))
	c.JSON(http.StatusOK, dto.ToListBranchesResponse(branches))
}

// updateBranch godoc
// @Summary Update a branch
// @Description Updates a branch's name, location or active flag
// @Tags branches
// @Accept  json
// @Produce  json
// @Param   id path string true "Branch ID"
// @Param   branch body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Branch not found"
// @Failure 500 {object} map[string]string "Failed to update branch"
// @Router /branches/{id} [put]
func (h *branchHandler) updateBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("id")

	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBranch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("branch_id", branchID))
	logger.Info("Received request to update branch")

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), branchID, req, callerUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Branch not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating branch", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update branch in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branch"})
		}
		return
	}

	logger.Info("Branch updated successfully")
	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}
