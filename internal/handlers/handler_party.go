package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hisabline/party_ledger_app/internal/apperrors"
	portssvc "github.com/hisabline/party_ledger_app/internal/core/ports/services"
	"github.com/hisabline/party_ledger_app/internal/dto"
	"github.com/hisabline/party_ledger_app/internal/middleware"
	"github.com/hisabline/party_ledger_app/internal/platform/config"
)

// partyHandler handles HTTP requests related to the party catalog.
type partyHandler struct {
	catalog     portssvc.PartyCatalogSvcFacade
	companyName string
}

func newPartyHandler(catalog portssvc.PartyCatalogSvcFacade, cfg *config.Config) *partyHandler {
	return &partyHandler{
		catalog:     catalog,
		companyName: cfg.CompanyName,
	}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, catalog portssvc.PartyCatalogSvcFacade, cfg *config.Config) {
	h := newPartyHandler(catalog, cfg)

	parties := rg.Group("/parties")
	{
		parties.GET("", h.listParties)
		parties.POST("", h.createParty)
		parties.POST("/reload", h.reloadParties)
		parties.GET("/transaction-parties", h.listTransactionParties)
		parties.GET("/by-display-name", h.getPartyByDisplayName)
		parties.GET("/:party_id", h.getParty)
		parties.PUT("/:party_id", h.updateParty)
		parties.DELETE("/:party_id", h.deleteParty)
	}
}

// listParties godoc
// @Summary List parties
// @Description Returns the loaded party catalog, loading it on first access.
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyResponse
// @Failure 502 {object} ErrorResponse "Party directory unavailable"
// @Security BearerAuth
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	parties := h.catalog.Parties()
	if len(parties) == 0 {
		if err := h.catalog.LoadAll(c.Request.Context()); err != nil {
			logger.Error("Failed to load party catalog", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Party directory unavailable"})
			return
		}
		parties = h.catalog.Parties()
	}

	c.JSON(http.StatusOK, dto.ToListPartyResponse(parties, h.companyName))
}

// reloadParties godoc
// @Summary Reload the party catalog
// @Description Re-fetches party records from the directory. A load already in flight is a no-op.
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyResponse
// @Failure 502 {object} ErrorResponse "Party directory unavailable; previous catalog kept"
// @Security BearerAuth
// @Router /parties/reload [post]
func (h *partyHandler) reloadParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.catalog.LoadAll(c.Request.Context()); err != nil {
		logger.Error("Failed to reload party catalog", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Party directory unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartyResponse(h.catalog.Parties(), h.companyName))
}

// listTransactionParties godoc
// @Summary List transaction parties
// @Description Returns the party list reserved for transaction-party selection.
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyResponse
// @Security BearerAuth
// @Router /parties/transaction-parties [get]
func (h *partyHandler) listTransactionParties(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListPartyResponse(h.catalog.TransactionParties(), h.companyName))
}

// getPartyByDisplayName godoc
// @Summary Find a party by display name
// @Description Parses a composite "Name (Company)" label and looks the party up by its bare name.
// @Tags parties
// @Produce json
// @Param name query string true "Display name"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/by-display-name [get]
func (h *partyHandler) getPartyByDisplayName(c *gin.Context) {
	display := c.Query("name")
	if display == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name query parameter required"})
		return
	}

	party, ok := h.catalog.FindByDisplayName(display)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party, h.companyName))
}

// getParty godoc
// @Summary Get a party
// @Tags parties
// @Produce json
// @Param party_id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{party_id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	party, ok := h.catalog.FindByID(c.Param("party_id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party, h.companyName))
}

// createParty godoc
// @Summary Create a new party
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.catalog.CreateParty(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create party"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartyResponse(created, h.companyName))
}

// updateParty godoc
// @Summary Update a party
// @Description Applies the given changes. The company and commission parties are refused.
// @Tags parties
// @Accept json
// @Produce json
// @Param party_id path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Restricted party"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{party_id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("party_id")

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.catalog.UpdateParty(c.Request.Context(), partyID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "This party is system managed and cannot be edited"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		default:
			logger.Error("Failed to update party", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update party"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(updated, h.companyName))
}

// deleteParty godoc
// @Summary Delete a party
// @Description Removes a party. The company and commission parties are refused.
// @Tags parties
// @Produce json
// @Param party_id path string true "Party ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Restricted party"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{party_id} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("party_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.catalog.DeleteParty(c.Request.Context(), partyID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "This party is system managed and cannot be deleted"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		default:
			logger.Error("Failed to delete party", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete party"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
