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
)

// ledgerHandler handles HTTP requests for party ledger accounts. The party is
// resolved first so the handler knows which side of the ledger to address.
type ledgerHandler struct {
	partyService  portssvc.PartySvcFacade
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ps portssvc.PartySvcFacade, ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{partyService: ps, ledgerService: ls}
}

// registerLedgerRoutes registers ledger routes nested under parties.
func registerLedgerRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(partyService, ledgerService)

	ledger := rg.Group("/parties/:partyID")
	{
		ledger.GET("/account", h.getAccount)
		ledger.GET("/statement", h.getStatement)
		ledger.POST("/adjustments", h.createAdjustment)
		ledger.DELETE("/transactions/:transactionID", h.removeTransaction)
	}
}

// resolveParty loads the party for a ledger route, writing the error response
// itself when the party cannot be used.
func (h *ledgerHandler) resolveParty(c *gin.Context) (*domain.Party, bool) {
	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to resolve party", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve party"})
		}
		return nil, false
	}
	return party, true
}

// getAccount godoc
// @Summary Get a party's ledger account
// @Description Returns the running-balance account with all entries, newest first, and derived gross totals
// @Tags ledger
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Party or account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /parties/{partyID}/account [get]
func (h *ledgerHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	party, ok := h.resolveParty(c)
	if !ok {
		return
	}

	account, err := h.ledgerService.GetAccount(c.Request.Context(), party.Kind, party.PartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No entries yet; an empty account is still a valid answer.
			c.JSON(http.StatusOK, dto.ToAccountResponse(&domain.Account{
				PartyID: party.PartyID,
				Kind:    party.Kind,
			}))
			return
		}
		logger.Error("Failed to get account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getStatement godoc
// @Summary Get one page of a party's ledger history
// @Tags ledger
// @Produce json
// @Param partyID path string true "Party ID"
// @Param limit query int false "Page size" default(25)
// @Param nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid token"
// @Failure 404 {object} map[string]string "Party or account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve statement"
// @Security BearerAuth
// @Router /parties/{partyID}/statement [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	party, ok := h.resolveParty(c)
	if !ok {
		return
	}
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.ledgerService.Statement(c.Request.Context(), party.Kind, party.PartyID, params.Limit, params.NextToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusOK, dto.StatementResponse{PartyID: party.PartyID, Kind: party.Kind, Transactions: []dto.TransactionResponse{}})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to get statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statement"})
		}
		return
	}

	res := dto.StatementResponse{
		PartyID:      party.PartyID,
		Kind:         party.Kind,
		Transactions: make([]dto.TransactionResponse, len(txns)),
		NextToken:    nextToken,
	}
	for i := range txns {
		res.Transactions[i] = dto.ToTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, res)
}

// createAdjustment godoc
// @Summary Append a credit adjustment
// @Description Appends a manual CREDIT entry that lowers the party's balance without touching gross totals
// @Tags ledger
// @Accept json
// @Produce json
// @Param partyID path string true "Party ID"
// @Param adjustment body dto.CreateAdjustmentRequest true "Adjustment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to append adjustment"
// @Security BearerAuth
// @Router /parties/{partyID}/adjustments [post]
func (h *ledgerHandler) createAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	party, ok := h.resolveParty(c)
	if !ok {
		return
	}
	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, uok := middleware.GetUserIDFromContext(c)
	if !uok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + req.Date})
		return
	}
	draft := domain.TransactionDraft{
		Date:        date,
		Type:        domain.Credit,
		Description: req.Description,
		Amount:      req.Amount,
	}
	txn, err := h.ledgerService.AppendTransaction(c.Request.Context(), party.Kind, party.PartyID, draft, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to append adjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to append adjustment"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// removeTransaction godoc
// @Summary Remove a ledger entry
// @Description Deletes one entry and recomputes the running balances of newer entries
// @Tags ledger
// @Produce json
// @Param partyID path string true "Party ID"
// @Param transactionID path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Party, account or entry not found"
// @Failure 500 {object} map[string]string "Failed to remove entry"
// @Security BearerAuth
// @Router /parties/{partyID}/transactions/{transactionID} [delete]
func (h *ledgerHandler) removeTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	party, ok := h.resolveParty(c)
	if !ok {
		return
	}

	err := h.ledgerService.RemoveTransaction(c.Request.Context(), party.Kind, party.PartyID, c.Param("transactionID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger entry not found"})
			return
		}
		logger.Error("Failed to remove ledger entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove entry"})
		return
	}
	c.Status(http.StatusNoContent)
}
