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

// itemHandler handles HTTP requests related to items and the price list.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{
		itemService: is,
	}
}

// registerItemRoutes registers routes related to items.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:id", h.getItem)
		items.PUT("/:id/prices", h.updatePrices)
	}
}

// createItem godoc
// @Summary Create a new item
// @Description Creates an item with its buy and sell price-list entry
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create item"
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create item", slog.String("item_name", req.Name), slog.String("branch_id", req.BranchID))

	item, err := h.itemService.CreateItem(c.Request.Context(), req, callerUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		}
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// getItem godoc
// @Summary Get an item by ID
// @Description Retrieves details for a specific item by its ID
// @Tags items
// @Produce  json
// @Param   id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Router /items/{id} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	logger = logger.With(slog.String("item_id", itemID))

	item, err := h.itemService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Item not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logger.Error("Failed to get item from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// listItems godoc
// @Summary List the price list of a branch
// @Description Retrieves all active items of a branch with their current prices
// @Tags items
// @Produce  json
// @Param   branchID query string true "Branch ID"
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} map[string]string "Missing branchID"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Query("branchID")
	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}

	logger = logger.With(slog.String("branch_id", branchID))

	items, err := h.itemService.ListItems(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to list items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	logger.Info("Items listed successfully", slog.Int("count", len(items)))
	c.JSON(http.StatusOK, dto.ToListItemsResponse(items))
}

// updatePrices godoc
// @Summary Update an item's prices
// @Description Rewrites the buy and sell price of an item
// @Tags items
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   prices body dto.UpdatePricesRequest true "New prices"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update prices"
// @Router /items/{id}/prices [put]
func (h *itemHandler) updatePrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePrices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("item_id", itemID))
	logger.Info("Received request to update prices", slog.String("buy_price", req.BuyPrice.String()), slog.String("sell_price", req.SellPrice.String()))

	item, err := h.itemService.UpdatePrices(c.Request.Context(), itemID, req, callerUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Item not found for price update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating prices", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update prices in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prices"})
		}
		return
	}

	logger.Info("Prices updated successfully")
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
