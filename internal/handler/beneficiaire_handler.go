package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"changex/internal/errors"
	"changex/internal/model"
	"changex/internal/service"
)

// BeneficiaireHandler handles beneficiary endpoints.
type BeneficiaireHandler struct {
	beneficiaireService service.BeneficiaireService
}

// NewBeneficiaireHandler creates a new beneficiary handler.
func NewBeneficiaireHandler(beneficiaireService service.BeneficiaireService) *BeneficiaireHandler {
	return &BeneficiaireHandler{beneficiaireService: beneficiaireService}
}

// BeneficiaireRequest represents a create or update request. The supplier is
// referenced by its unique name.
type BeneficiaireRequest struct {
	Nom            string           `json:"nom" validate:"required"`
	CommissionUSDT *decimal.Decimal `json:"commission_USDT" validate:"required"`
	FournisseurNom string           `json:"fournisseur_nom" validate:"required"`
}

// BeneficiaireResponse represents a beneficiary with its supplier's name.
type BeneficiaireResponse struct {
	ID             uint            `json:"id"`
	Nom            string          `json:"nom"`
	CommissionUSDT decimal.Decimal `json:"commission_USDT"`
	FournisseurNom string          `json:"fournisseur_nom"`
}

// FournisseurDetails is the supplier block nested in a by-id response.
type FournisseurDetails struct {
	ID           uint            `json:"id"`
	Nom          string          `json:"nom"`
	TauxJour     int64           `json:"taux_jour"`
	QuantiteUSDT decimal.Decimal `json:"quantite_USDT"`
}

// BeneficiaireDetailResponse represents a beneficiary with full supplier details.
type BeneficiaireDetailResponse struct {
	ID             uint               `json:"id"`
	Nom            string             `json:"nom"`
	CommissionUSDT decimal.Decimal    `json:"commission_USDT"`
	Fournisseur    FournisseurDetails `json:"fournisseur"`
}

// BeneficiaireListResponse wraps the beneficiary list.
type BeneficiaireListResponse struct {
	Beneficiaires []BeneficiaireResponse `json:"beneficiaires"`
}

func toBeneficiaireResponse(b *model.Beneficiaire) BeneficiaireResponse {
	resp := BeneficiaireResponse{
		ID:             b.ID,
		Nom:            b.Nom,
		CommissionUSDT: b.CommissionUSDT,
	}
	if b.Fournisseur != nil {
		resp.FournisseurNom = b.Fournisseur.Nom
	}
	return resp
}

// Add godoc
// @Summary Create a beneficiary under a supplier
// @Tags beneficiaires
// @Accept json
// @Produce json
// @Param request body BeneficiaireRequest true "Beneficiary data"
// @Success 201 {object} BeneficiaireResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /add/benef [post]
func (h *BeneficiaireHandler) Add(c echo.Context) error {
	var req BeneficiaireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nom, commission_USDT and fournisseur_nom are required")
	}

	beneficiaire, err := h.beneficiaireService.Create(c.Request().Context(), req.Nom, *req.CommissionUSDT, req.FournisseurNom)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toBeneficiaireResponse(beneficiaire))
}

// All godoc
// @Summary List all beneficiaries with their supplier names
// @Tags beneficiaires
// @Produce json
// @Success 200 {object} BeneficiaireListResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /all/benef [get]
func (h *BeneficiaireHandler) All(c echo.Context) error {
	beneficiaires, err := h.beneficiaireService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := BeneficiaireListResponse{Beneficiaires: make([]BeneficiaireResponse, 0, len(beneficiaires))}
	for i := range beneficiaires {
		resp.Beneficiaires = append(resp.Beneficiaires, toBeneficiaireResponse(&beneficiaires[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Fetch a beneficiary with supplier details
// @Tags beneficiaires
// @Produce json
// @Param id path int true "Beneficiary ID"
// @Success 200 {object} BeneficiaireDetailResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /benef/{id} [get]
func (h *BeneficiaireHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	beneficiaire, err := h.beneficiaireService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := BeneficiaireDetailResponse{
		ID:             beneficiaire.ID,
		Nom:            beneficiaire.Nom,
		CommissionUSDT: beneficiaire.CommissionUSDT,
	}
	if beneficiaire.Fournisseur != nil {
		resp.Fournisseur = FournisseurDetails{
			ID:           beneficiaire.Fournisseur.ID,
			Nom:          beneficiaire.Fournisseur.Nom,
			TauxJour:     beneficiaire.Fournisseur.TauxJour,
			QuantiteUSDT: beneficiaire.Fournisseur.QuantiteUSDT,
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a beneficiary, reassigning its supplier by name
// @Tags beneficiaires
// @Accept json
// @Produce json
// @Param id path int true "Beneficiary ID"
// @Param request body BeneficiaireRequest true "New beneficiary data"
// @Success 200 {object} BeneficiaireResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /update/benef/{id} [put]
func (h *BeneficiaireHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req BeneficiaireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nom, commission_USDT and fournisseur_nom are required")
	}

	beneficiaire, err := h.beneficiaireService.Update(c.Request().Context(), id, req.Nom, *req.CommissionUSDT, req.FournisseurNom)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toBeneficiaireResponse(beneficiaire))
}

// Delete godoc
// @Summary Delete a beneficiary
// @Tags beneficiaires
// @Produce json
// @Param id path int true "Beneficiary ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /delete/benef/{id} [delete]
func (h *BeneficiaireHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.beneficiaireService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "beneficiaire deleted"})
}
