package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taxpro/taxpro-api/internal/interfaces"
	"github.com/taxpro/taxpro-api/internal/middleware"
	"github.com/taxpro/taxpro-api/internal/types/api/params"
	"github.com/taxpro/taxpro-api/internal/types/api/requests"
	"github.com/taxpro/taxpro-api/internal/types/api/responses"
	"go.uber.org/zap"
)

// TaxHandler serves tax estimates, bracket and state rate tables and
// calculation history.
type TaxHandler struct {
	common     *CommonServices
	taxService interfaces.TaxService
}

// NewTaxHandler creates a handler with interface dependencies
func NewTaxHandler(common *CommonServices, taxService interfaces.TaxService) *TaxHandler {
	return &TaxHandler{
		common:     common,
		taxService: taxService,
	}
}

// Use types from the centralized packages
type (
	CalculateTaxRequest    = requests.CalculateTaxRequest
	TaxCalculationResponse = responses.TaxCalculationResponse
	StateRateResponse      = responses.StateRateResponse
)

// CalculateTax godoc
// @Summary Estimate federal and state income tax
// @Description Computes federal tax over the progressive brackets for the filing status, flat state tax and the effective rate, then records the result in history. Amounts may be sent as numbers or numeric strings.
// @Tags tax
// @Accept json
// @Produce json
// @Param request body CalculateTaxRequest true "Tax inputs"
// @Success 200 {object} TaxCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /calculate-tax [post]
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	var req CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	p := params.CalculateTaxParams{
		Income:               req.Income.Float64(),
		FilingStatus:         req.FilingStatus,
		State:                req.State,
		AdditionalDeductions: req.AdditionalDeductions.Float64(),
	}
	if req.StandardDeduction != nil {
		v := req.StandardDeduction.Float64()
		p.StandardDeduction = &v
	}

	result, err := h.taxService.CalculateTax(c.Request.Context(), p)
	if err != nil {
		handleServiceError(c, err, "Tax calculation not found")
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// GetTaxBrackets godoc
// @Summary Get federal tax brackets
// @Description Returns the bracket table for a filing status. Unknown statuses return an empty list.
// @Tags tax
// @Produce json
// @Param filingStatus path string true "single, married or headOfHousehold"
// @Success 200 {array} taxengine.Bracket
// @Router /tax-brackets/{filingStatus} [get]
func (h *TaxHandler) GetTaxBrackets(c *gin.Context) {
	sendSuccess(c, http.StatusOK, h.taxService.GetTaxBrackets(c.Param("filingStatus")))
}

// ListStateRates godoc
// @Summary List state tax rates
// @Tags tax
// @Produce json
// @Success 200 {array} StateRateResponse
// @Router /state-rates [get]
func (h *TaxHandler) ListStateRates(c *gin.Context) {
	sendSuccess(c, http.StatusOK, h.taxService.ListStateRates())
}

// GetStateRate godoc
// @Summary Get a state tax rate
// @Description Unknown state codes return rate 0 with known set to false.
// @Tags tax
// @Produce json
// @Param state path string true "Two letter state code"
// @Success 200 {object} StateRateResponse
// @Router /state-rates/{state} [get]
func (h *TaxHandler) GetStateRate(c *gin.Context) {
	sendSuccess(c, http.StatusOK, h.taxService.GetStateRate(c.Param("state")))
}

// GetTaxHistory godoc
// @Summary List recent tax calculations
// @Description Newest first. A storage failure is logged and an empty list is returned.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of records (default 10, max 100)"
// @Success 200 {array} TaxCalculationResponse
// @Router /tax-history [get]
func (h *TaxHandler) GetTaxHistory(c *gin.Context) {
	history, err := h.taxService.ListCalculationHistory(c.Request.Context(), parseLimit(c))
	if err != nil {
		h.common.GetLogger().Error("Failed to fetch tax history",
			zap.String("correlation_id", middleware.GetCorrelationID(c)),
			zap.Error(err))
		sendSuccess(c, http.StatusOK, []TaxCalculationResponse{})
		return
	}
	if history == nil {
		history = []TaxCalculationResponse{}
	}
	sendSuccess(c, http.StatusOK, history)
}

// GetTaxCalculation godoc
// @Summary Get a stored tax calculation
// @Description Returns the stored snapshot with the bracket breakdown recomputed from its inputs.
// @Tags history
// @Produce json
// @Param id path string true "Calculation ID"
// @Success 200 {object} TaxCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tax-history/{id} [get]
func (h *TaxHandler) GetTaxCalculation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid calculation ID format", err)
		return
	}

	result, err := h.taxService.GetCalculation(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Tax calculation not found")
		return
	}
	sendSuccess(c, http.StatusOK, result)
}
