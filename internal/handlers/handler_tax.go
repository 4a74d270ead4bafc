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

// taxHandler handles HTTP requests for VAT declaration reports.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

func newTaxHandler(ts portssvc.TaxSvcFacade) *taxHandler {
	return &taxHandler{taxService: ts}
}

// registerTaxRoutes registers the reporting routes.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)

	reports := rg.Group("/reports")
	{
		reports.GET("/vat", h.getVATDeclaration)
	}
}

// getVATDeclaration godoc
// @Summary VAT declaration for a period
// @Description Aggregates sales and purchase VAT over an inclusive calendar date range
// @Tags reports
// @Produce json
// @Param from query string true "Period start (YYYY-MM-DD)"
// @Param to query string true "Period end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.TaxDeclarationResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to compute declaration"
// @Security BearerAuth
// @Router /reports/vat [get]
func (h *taxHandler) getVATDeclaration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TaxDeclarationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, err := domain.ParseDate(params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date: " + params.From})
		return
	}
	to, err := domain.ParseDate(params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date: " + params.To})
		return
	}

	decl, err := h.taxService.DeclarationForPeriod(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compute VAT declaration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute declaration"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxDeclarationResponse(decl))
}
