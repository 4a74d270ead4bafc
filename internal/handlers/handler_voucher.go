package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/bsmapp/battery_shop_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to receipt and payment vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// registerVoucherRoutes registers routes related to vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherID", h.getVoucherByID)
		vouchers.PUT("/:voucherID", h.updateVoucher)
		vouchers.DELETE("/:voucherID", h.deleteVoucher)
	}
}

// createVoucher godoc
// @Summary Create a voucher
// @Description Saves a receipt or payment voucher and posts it to the party's ledger
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to create voucher"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req, userID)
	if err != nil {
		writeInvoiceError(c, logger, err, "Failed to create voucher")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// getVoucherByID godoc
// @Summary Get a voucher
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to retrieve voucher"
// @Security BearerAuth
// @Router /vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucherByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to get voucher", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve voucher"})
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Retrieves vouchers, optionally filtered by kind and party
// @Tags vouchers
// @Produce json
// @Param kind query string false "RECEIPT or PAYMENT"
// @Param partyID query string false "Filter by party"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list vouchers"
// @Security BearerAuth
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portsrepo.VoucherListFilter{
		Kind:    domain.VoucherKind(params.Kind),
		PartyID: params.PartyID,
	}
	vouchers, err := h.voucherService.ListVouchers(c.Request.Context(), filter, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vouchers"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListVoucherResponse(vouchers))
}

// updateVoucher godoc
// @Summary Update a voucher
// @Description Replaces the voucher's amount, date and method; its ledger entry is re-posted
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Param voucher body dto.UpdateVoucherRequest true "New voucher content"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to update voucher"
// @Security BearerAuth
// @Router /vouchers/{voucherID} [put]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.UpdateVoucher(c.Request.Context(), voucherID, req, userID)
	if err != nil {
		writeInvoiceError(c, logger, err, "Failed to update voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// deleteVoucher godoc
// @Summary Delete a voucher
// @Description Removes the voucher and reverses its ledger entry
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to delete voucher"
// @Security BearerAuth
// @Router /vouchers/{voucherID} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), voucherID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to delete voucher", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete voucher"})
		return
	}
	c.Status(http.StatusNoContent)
}
