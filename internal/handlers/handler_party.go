package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/bsmapp/battery_shop_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// partyHandler handles HTTP requests related to customers and suppliers.
type partyHandler struct {
	partyService  portssvc.PartySvcFacade
	ledgerService portssvc.LedgerReaderSvc
}

func newPartyHandler(ps portssvc.PartySvcFacade, ls portssvc.LedgerReaderSvc) *partyHandler {
	return &partyHandler{partyService: ps, ledgerService: ls}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newPartyHandler(partyService, ledgerService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getPartyByID)
		parties.PUT("/:partyID", h.updateParty)
		parties.DELETE("/:partyID", h.deactivateParty)
	}
}

// createParty godoc
// @Summary Register a customer or supplier
// @Description Adds a new party to the books
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Security BearerAuth
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create party"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// getPartyByID godoc
// @Summary Get a party
// @Description Retrieves a party; pass withBalance=true to include the current ledger balance
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Param withBalance query bool false "Include current ledger balance"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to retrieve party"
// @Security BearerAuth
// @Router /parties/{partyID} [get]
func (h *partyHandler) getPartyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
			return
		}
		logger.Error("Failed to get party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve party"})
		return
	}

	res := dto.ToPartyResponse(party)
	if c.Query("withBalance") == "true" {
		account, err := h.ledgerService.GetAccount(c.Request.Context(), party.Kind, party.PartyID)
		switch {
		case err == nil:
			balance := account.CurrentBalance
			res.Balance = &balance
		case errors.Is(err, apperrors.ErrNotFound):
			// No ledger activity yet; report a zero balance.
			zero := decimal.Zero
			res.Balance = &zero
		default:
			logger.Error("Failed to load party balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve party balance"})
			return
		}
	}
	c.JSON(http.StatusOK, res)
}

// listParties godoc
// @Summary List parties of one kind
// @Description Retrieves a paginated list of customers or suppliers
// @Tags parties
// @Produce json
// @Param kind query string true "CUSTOMER or SUPPLIER"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid kind"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Security BearerAuth
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind := domain.PartyKind(c.Query("kind"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be CUSTOMER or SUPPLIER"})
		return
	}
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), kind, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list parties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parties"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListPartyResponse(parties))
}

// updateParty godoc
// @Summary Update a party
// @Description Updates contact details of a party; kind is immutable
// @Tags parties
// @Accept json
// @Produce json
// @Param partyID path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to update party"
// @Security BearerAuth
// @Router /parties/{partyID} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
			return
		}
		logger.Error("Failed to update party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update party"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deactivateParty godoc
// @Summary Deactivate a party
// @Description Soft-deletes a party; its ledger history stays readable
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to deactivate party"
// @Security BearerAuth
// @Router /parties/{partyID} [delete]
func (h *partyHandler) deactivateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.partyService.DeactivateParty(c.Request.Context(), partyID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
			return
		}
		logger.Error("Failed to deactivate party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate party"})
		return
	}
	c.Status(http.StatusNoContent)
}
