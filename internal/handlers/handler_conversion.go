package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	portssvc "github.com/avelins/currency_exchange_app/internal/core/ports/services"
	"github.com/avelins/currency_exchange_app/internal/dto"
	"github.com/avelins/currency_exchange_app/internal/middleware"
	"github.com/avelins/currency_exchange_app/internal/utils/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// conversionHandler handles currency conversion requests.
type conversionHandler struct {
	conversionService portssvc.ConversionSvc
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvc) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers the conversion route.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvc) {
	h := newConversionHandler(conversionService)

	rg.GET("/exchange", h.convert)
}

// convert godoc
// @Summary Convert an amount between two currencies
// @Description Resolves the effective rate (direct, inverse, or triangulated via the anchor currency) and applies it to the amount
// @Tags exchange
// @Produce  json
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   amount query string true "Amount to convert"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Rate could not be resolved"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /exchange [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Query("from")
	toCode := c.Query("to")
	amountStr := c.Query("amount")

	logger = logger.With(
		slog.String("from_currency", fromCode),
		slog.String("to_currency", toCode),
		slog.String("amount", amountStr),
	)
	logger.Info("Received request to convert currencies")

	if !validation.IsValidAmount(amountStr) {
		logger.Warn("Invalid amount parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number"})
		return
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		logger.Warn("Failed to parse amount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number"})
		return
	}

	conversion, err := h.conversionService.Convert(c.Request.Context(), fromCode, toCode, amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error converting currencies", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrCantConvert):
			logger.Warn("Conversion not possible", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnavailable):
			logger.Error("Store unavailable while converting", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Data store is unavailable"})
		default:
			logger.Error("Failed to convert currencies", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert currencies"})
		}
		return
	}

	logger.Info("Conversion completed successfully",
		slog.String("rate", conversion.Rate.String()))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}
