package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	portssvc "github.com/avelins/currency_exchange_app/internal/core/ports/services"
	"github.com/avelins/currency_exchange_app/internal/dto"
	"github.com/avelins/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService: rs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("", h.listExchangeRates)
		rates.GET("/:base/:target", h.getExchangeRate)
		rates.PATCH("/:base/:target", h.updateExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds a new directed exchange rate between two stored currencies
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "One or both currencies not found"
// @Failure 409 {object} map[string]string "Rate for the pair already exists"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create exchange rate",
		slog.String("base_currency", req.BaseCurrencyCode),
		slog.String("target_currency", req.TargetCurrencyCode))

	createdRate, err := h.rateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.Int64("exchange_rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// getExchangeRate godoc
// @Summary Get an exchange rate for a currency pair
// @Description Retrieves the stored rate for the exact ordered pair of currency codes
// @Tags exchange-rates
// @Produce  json
// @Param   base path string true "Base currency code"
// @Param   target path string true "Target currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency codes"
// @Failure 404 {object} map[string]string "Rate for the pair not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{base}/{target} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseCode := c.Param("base")
	targetCode := c.Param("target")

	logger = logger.With(slog.String("base_currency", baseCode), slog.String("target_currency", targetCode))
	logger.Info("Received request to get exchange rate")

	rate, err := h.rateService.GetExchangeRate(c.Request.Context(), baseCode, targetCode)
	if err != nil {
		h.respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	logger.Info("Exchange rate retrieved successfully")
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateExchangeRate godoc
// @Summary Update the rate of an existing currency pair
// @Description Overwrites the rate value of an existing directed pair; never creates a new pair
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   base path string true "Base currency code"
// @Param   target path string true "Target currency code"
// @Param   rate body dto.UpdateExchangeRateRequest true "New rate value"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rate for the pair not found"
// @Failure 500 {object} map[string]string "Failed to update exchange rate"
// @Router /exchange-rates/{base}/{target} [patch]
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseCode := c.Param("base")
	targetCode := c.Param("target")

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("base_currency", baseCode), slog.String("target_currency", targetCode))
	logger.Info("Received request to update exchange rate")

	updatedRate, err := h.rateService.UpdateExchangeRate(c.Request.Context(), baseCode, targetCode, req)
	if err != nil {
		h.respondError(c, logger, err, "Failed to update exchange rate")
		return
	}

	logger.Info("Exchange rate updated successfully", slog.Int64("exchange_rate_id", updatedRate.ExchangeRateID))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(updatedRate))
}

// listExchangeRates godoc
// @Summary List all exchange rates
// @Description Retrieves all stored rates with both currencies resolved
// @Tags exchange-rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list exchange rates")

	rates, err := h.rateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	logger.Info("Exchange rates listed successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// respondError maps service errors to HTTP statuses shared by the rate endpoints.
func (h *exchangeRateHandler) respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnavailable):
		logger.Error("Store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Data store is unavailable"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
