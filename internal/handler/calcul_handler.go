package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"changex/internal/errors"
	"changex/internal/service"
)

// CalculHandler handles the stateless conversion calculator.
type CalculHandler struct {
	calculService service.CalculService
}

// NewCalculHandler creates a new calculation handler.
func NewCalculHandler(calculService service.CalculService) *CalculHandler {
	return &CalculHandler{calculService: calculService}
}

// CalculRequest carries the figures of a prospective conversion. Absent
// fields default to zero, matching the calculator's lenient contract.
type CalculRequest struct {
	MontantFCFA     decimal.Decimal `json:"montantFCFA"`
	TauxConvenu     decimal.Decimal `json:"tauxConvenu"`
	TauxFournisseur decimal.Decimal `json:"tauxFournisseur"`
	QuantiteUSDT    decimal.Decimal `json:"quantiteUSDT"`
	Commission      decimal.Decimal `json:"commission"`
}

// CalculResponse mirrors the dashboard's expected result shape. The total and
// per-beneficiary fields repeat the two benefit figures under the aliases the
// frontend reads.
type CalculResponse struct {
	MontantUSDT             decimal.Decimal `json:"montantUSDT"`
	BeneficeUSDT            decimal.Decimal `json:"beneficeUSDT"`
	BeneficeTotalFCFA       decimal.Decimal `json:"beneficeTotalFCFA"`
	BeneficeBeneficiaire    decimal.Decimal `json:"beneficeBeneficiaire"`
	TotalBenefice           decimal.Decimal `json:"totalBenefice"`
	BeneficeParBeneficiaire decimal.Decimal `json:"beneficeParBeneficiaire"`
}

// Calculer godoc
// @Summary Compute conversion and profit figures
// @Tags calcul
// @Accept json
// @Produce json
// @Param request body CalculRequest true "Conversion figures"
// @Success 200 {object} CalculResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /calculer [post]
func (h *CalculHandler) Calculer(c echo.Context) error {
	var req CalculRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.calculService.Calculer(service.CalculInput{
		MontantFCFA:     req.MontantFCFA,
		TauxConvenu:     req.TauxConvenu,
		TauxFournisseur: req.TauxFournisseur,
		QuantiteUSDT:    req.QuantiteUSDT,
		Commission:      req.Commission,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CalculResponse{
		MontantUSDT:             result.MontantUSDT,
		BeneficeUSDT:            result.BeneficeUSDT,
		BeneficeTotalFCFA:       result.BeneficeTotalFCFA,
		BeneficeBeneficiaire:    result.BeneficeBeneficiaire,
		TotalBenefice:           result.BeneficeTotalFCFA,
		BeneficeParBeneficiaire: result.BeneficeBeneficiaire,
	})
}
