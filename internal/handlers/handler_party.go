package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scrapline/junkshop_backoffice/internal/apperrors"
	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
	portssvc "github.com/scrapline/junkshop_backoffice/internal/core/ports/services"
	"github.com/scrapline/junkshop_backoffice/internal/dto"
	"github.com/scrapline/junkshop_backoffice/internal/middleware"
)

// partyHandler handles HTTP requests related to buyers, sellers and employees.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{
		partyService: ps,
	}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
		parties.PUT("/:id", h.updateParty)
	}
}

// createParty godoc
// @Summary Create a new party
// @Description Creates a buyer, seller or employee record
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "A party of this type with the same name exists"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create party", slog.String("party_type", req.Type), slog.String("party_name", req.Name))

	party, err := h.partyService.CreateParty(c.Request.Context(), req, callerUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate party name", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating party", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create party"})
		}
		return
	}

	logger.Info("Party created successfully", slog.String("party_id", party.PartyID))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// getParty godoc
// @Summary Get a party by ID
// @Description Retrieves details for a specific party by its ID
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to retrieve party"
// @Router /parties/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	logger = logger.With(slog.String("party_id", partyID))

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to get party from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve party"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties of one type for a branch
// @Description Retrieves all active buyers, sellers or employees of a branch
// @Tags parties
// @Produce  json
// @Param   branchID query string true "Branch ID"
// @Param   type query string true "Party type (buyer, seller or employee)"
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 400 {object} map[string]string "Missing or invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Query("branchID")
	partyType := domain.PartyType(c.Query("type"))

	if branchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branchID query parameter is required"})
		return
	}
	switch partyType {
	case domain.PartyBuyer, domain.PartySeller, domain.PartyEmployee:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be one of buyer, seller, employee"})
		return
	}

	logger = logger.With(slog.String("branch_id", branchID), slog.String("party_type", string(partyType)))

	parties, err := h.partyService.ListParties(c.Request.Context(), branchID, partyType)
	if err != nil {
		logger.Error("Failed to list parties from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parties"})
		return
	}

	logger.Info("Parties listed successfully", slog.Int("count", len(parties)))
	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

// updateParty godoc
// @Summary Update a party
// @Description Updates a party's name, contact, address or active flag
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to update party"
// @Router /parties/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("party_id", partyID))
	logger.Info("Received request to update party")

	party, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req, callerUserID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Party not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating party", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update party"})
		}
		return
	}

	logger.Info("Party updated successfully")
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}
