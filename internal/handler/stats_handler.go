package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"changex/internal/errors"
	"changex/internal/service"
)

// StatsHandler handles the dashboard count endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// TotalFournisseurs godoc
// @Summary Total supplier count
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /total/fr [get]
func (h *StatsHandler) TotalFournisseurs(c echo.Context) error {
	total, err := h.statsService.TotalFournisseurs(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"total_fournisseurs": total})
}

// TotalTransactions godoc
// @Summary Total transaction count
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /total/tr [get]
func (h *StatsHandler) TotalTransactions(c echo.Context) error {
	total, err := h.statsService.TotalTransactions(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total})
}

// TotalBeneficiaires godoc
// @Summary Total beneficiary count
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /total/bn [get]
func (h *StatsHandler) TotalBeneficiaires(c echo.Context) error {
	total, err := h.statsService.TotalBeneficiaires(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"total_beneficiaires": total})
}
