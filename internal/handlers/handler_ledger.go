package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hisabline/party_ledger_app/internal/apperrors"
	portssvc "github.com/hisabline/party_ledger_app/internal/core/ports/services"
	"github.com/hisabline/party_ledger_app/internal/dto"
	"github.com/hisabline/party_ledger_app/internal/middleware"
)

// ledgerHandler handles HTTP requests for the ledger view of a single party:
// formatted rows, the old-records toggle, selection, and entry mutations.
type ledgerHandler struct {
	ledgerView portssvc.LedgerViewSvcFacade
}

func newLedgerHandler(lv portssvc.LedgerViewSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerView: lv,
	}
}

// RegisterLedgerRoutes registers the ledger view routes under a party.
func RegisterLedgerRoutes(rg *gin.RouterGroup, lv portssvc.LedgerViewSvcFacade) {
	registerEntryTypeValidation()
	h := newLedgerHandler(lv)

	ledger := rg.Group("/parties/:party_id")
	{
		ledger.GET("/ledger", h.getLedgerView)
		ledger.POST("/entries", h.addTransaction)
		ledger.POST("/entries/select", h.selectEntry)
		ledger.POST("/entries/select-all", h.selectAllEntries)
		ledger.POST("/entries/clear-selection", h.clearSelection)
		ledger.DELETE("/entries", h.deleteSelected)
		ledger.POST("/monday-final", h.settleMondayFinal)
	}
}

// getLedgerView godoc
// @Summary Get a party's formatted ledger view
// @Description Returns the rows of the selected partition (current entries or old records) with display attributes, plus the empty-state message.
// @Tags ledger
// @Produce json
// @Param party_id path string true "Party ID"
// @Param showOldRecords query bool false "Render the old-records partition"
// @Success 200 {object} dto.LedgerViewResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /parties/{party_id}/ledger [get]
func (h *ledgerHandler) getLedgerView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("party_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	showOldRecords, _ := strconv.ParseBool(c.DefaultQuery("showOldRecords", "false"))

	rows, emptyMsg, err := h.ledgerView.GetLedgerView(c.Request.Context(), userID, partyID, showOldRecords)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstream) {
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Ledger store unavailable"})
			return
		}
		logger.Error("Failed to build ledger view", slog.String("error", err.Error()), slog.String("party_id", partyID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load ledger"})
		return
	}

	selected := 0
	for _, row := range rows {
		if row.Selected {
			selected++
		}
	}

	c.JSON(http.StatusOK, dto.LedgerViewResponse{
		PartyID:        partyID,
		ShowOldRecords: showOldRecords,
		Rows:           rows,
		EmptyMessage:   emptyMsg,
		SelectedCount:  selected,
	})
}

// addTransaction godoc
// @Summary Record a transaction
// @Description Appends a credit or debit entry to the party's ledger. Refused for the company and commission parties.
// @Tags ledger
// @Accept json
// @Produce json
// @Param party_id path string true "Party ID"
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Restricted party"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{party_id}/entries [post]
func (h *ledgerHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("party_id")

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	saved, err := h.ledgerView.AddTransaction(c.Request.Context(), userID, partyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Transactions cannot be added to this party"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		default:
			logger.Error("Failed to record transaction", slog.String("error", err.Error()), slog.String("party_id", partyID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(saved))
}

// selectEntry godoc
// @Summary Select or deselect one entry
// @Tags ledger
// @Accept json
// @Produce json
// @Param party_id path string true "Party ID"
// @Param selection body dto.SelectEntryRequest true "Entry identity and checked state"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{party_id}/entries/select [post]
func (h *ledgerHandler) selectEntry(c *gin.Context) {
	partyID := c.Param("party_id")

	var req dto.SelectEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerView.Select(c.Request.Context(), userID, partyID, req.EntryID, req.Checked); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid entry identity"})
		return
	}

	c.Status(http.StatusNoContent)
}

// selectAllEntries godoc
// @Summary Select or deselect entries in bulk
// @Tags ledger
// @Accept json
// @Produce json
// @Param party_id path string true "Party ID"
// @Param selection body dto.SelectAllEntriesRequest true "Entry identities and checked state"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{party_id}/entries/select-all [post]
func (h *ledgerHandler) selectAllEntries(c *gin.Context) {
	partyID := c.Param("party_id")

	var req dto.SelectAllEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerView.SelectAll(c.Request.Context(), userID, partyID, req.EntryIDs, req.Checked); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid entry identities"})
		return
	}

	c.Status(http.StatusNoContent)
}

// clearSelection godoc
// @Summary Clear the entry selection
// @Tags ledger
// @Produce json
// @Param party_id path string true "Party ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /parties/{party_id}/entries/clear-selection [post]
func (h *ledgerHandler) clearSelection(c *gin.Context) {
	partyID := c.Param("party_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	_ = h.ledgerView.ClearSelection(c.Request.Context(), userID, partyID)
	c.Status(http.StatusNoContent)
}

// deleteSelected godoc
// @Summary Delete the selected entries
// @Description Removes the currently selected entries from the party's ledger. Refused for restricted parties.
// @Tags ledger
// @Produce json
// @Param party_id path string true "Party ID"
// @Success 200 {object} map[string]int "deleted count"
// @Failure 403 {object} ErrorResponse "Restricted party"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{party_id}/entries [delete]
func (h *ledgerHandler) deleteSelected(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("party_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.ledgerView.DeleteSelected(c.Request.Context(), userID, partyID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Entries of this party cannot be deleted"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		default:
			logger.Error("Failed to delete entries", slog.String("error", err.Error()), slog.String("party_id", partyID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete entries"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// settleMondayFinal godoc
// @Summary Run the Monday Final settlement
// @Description Archives the party's current entries into the old-records partition. Refused for the company and commission parties.
// @Tags ledger
// @Produce json
// @Param party_id path string true "Party ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Restricted party"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{party_id}/monday-final [post]
func (h *ledgerHandler) settleMondayFinal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("party_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerView.SettleMondayFinal(c.Request.Context(), userID, partyID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "This party is excluded from Monday Final settlement"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
		default:
			logger.Error("Failed to settle Monday Final", slog.String("error", err.Error()), slog.String("party_id", partyID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
