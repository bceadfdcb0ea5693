package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"changex/internal/errors"
	"changex/internal/model"
	"changex/internal/repository"
	"changex/internal/service"
)

// FournisseurHandler handles supplier endpoints.
type FournisseurHandler struct {
	fournisseurService service.FournisseurService
}

// NewFournisseurHandler creates a new supplier handler.
func NewFournisseurHandler(fournisseurService service.FournisseurService) *FournisseurHandler {
	return &FournisseurHandler{fournisseurService: fournisseurService}
}

// CreateFournisseurRequest represents a supplier creation request.
type CreateFournisseurRequest struct {
	Nom           string           `json:"nom" validate:"required"`
	TauxJour      *int64           `json:"taux_jour" validate:"required"`
	QuantiteUSDT  *decimal.Decimal `json:"quantite_USDT" validate:"required"`
	TransactionID *uint            `json:"transaction_id" validate:"required"`
}

// BeneficiaireEntry is one element of a replacement beneficiary collection.
type BeneficiaireEntry struct {
	Nom            *string          `json:"nom"`
	CommissionUSDT *decimal.Decimal `json:"commission_USDT"`
}

// UpdateFournisseurRequest represents a partial supplier update. Absent fields
// are left untouched; a present beneficiaires array replaces the collection.
type UpdateFournisseurRequest struct {
	Nom           *string              `json:"nom"`
	TauxJour      *int64               `json:"taux_jour"`
	QuantiteUSDT  *decimal.Decimal     `json:"quantite_USDT"`
	TransactionID *uint                `json:"transaction_id"`
	Beneficiaires *[]BeneficiaireEntry `json:"beneficiaires"`
}

// BeneficiaireItem is a beneficiary nested under a supplier response.
type BeneficiaireItem struct {
	ID             uint            `json:"id"`
	Nom            string          `json:"nom"`
	CommissionUSDT decimal.Decimal `json:"commission_USDT"`
}

// FournisseurResponse represents a supplier with its nested records.
type FournisseurResponse struct {
	ID            uint               `json:"id"`
	Nom           string             `json:"nom"`
	TauxJour      int64              `json:"taux_jour"`
	QuantiteUSDT  decimal.Decimal    `json:"quantite_USDT"`
	TransactionID uint               `json:"transaction_id"`
	Transaction   *model.Transaction `json:"transaction,omitempty"`
	Beneficiaires []BeneficiaireItem `json:"beneficiaires"`
}

// FournisseurListResponse wraps the supplier list.
type FournisseurListResponse struct {
	Fournisseurs []FournisseurResponse `json:"fournisseurs"`
}

// FournisseurNamesResponse wraps the id/nom projection list.
type FournisseurNamesResponse struct {
	Fournisseurs []repository.FournisseurName `json:"fournisseurs"`
}

func toFournisseurResponse(f *model.Fournisseur, withTransaction bool) FournisseurResponse {
	resp := FournisseurResponse{
		ID:            f.ID,
		Nom:           f.Nom,
		TauxJour:      f.TauxJour,
		QuantiteUSDT:  f.QuantiteUSDT,
		TransactionID: f.TransactionID,
		Beneficiaires: make([]BeneficiaireItem, 0, len(f.Beneficiaires)),
	}
	if withTransaction {
		resp.Transaction = f.Transaction
	}
	for _, b := range f.Beneficiaires {
		resp.Beneficiaires = append(resp.Beneficiaires, BeneficiaireItem{
			ID:             b.ID,
			Nom:            b.Nom,
			CommissionUSDT: b.CommissionUSDT,
		})
	}
	return resp
}

// Add godoc
// @Summary Create a supplier under a transaction
// @Tags fournisseurs
// @Accept json
// @Produce json
// @Param request body CreateFournisseurRequest true "Supplier data"
// @Success 201 {object} FournisseurResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /add/four [post]
func (h *FournisseurHandler) Add(c echo.Context) error {
	var req CreateFournisseurRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nom, taux_jour, quantite_USDT and transaction_id are required")
	}

	fournisseur, err := h.fournisseurService.Create(c.Request().Context(), req.Nom, *req.TauxJour, *req.QuantiteUSDT, *req.TransactionID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toFournisseurResponse(fournisseur, false))
}

// All godoc
// @Summary List all suppliers with their beneficiaries
// @Tags fournisseurs
// @Produce json
// @Success 200 {object} FournisseurListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /all/four [get]
func (h *FournisseurHandler) All(c echo.Context) error {
	fournisseurs, err := h.fournisseurService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := FournisseurListResponse{Fournisseurs: make([]FournisseurResponse, 0, len(fournisseurs))}
	for i := range fournisseurs {
		resp.Fournisseurs = append(resp.Fournisseurs, toFournisseurResponse(&fournisseurs[i], false))
	}

	return c.JSON(http.StatusOK, resp)
}

// Names godoc
// @Summary List supplier ids and names
// @Tags fournisseurs
// @Produce json
// @Success 200 {object} FournisseurNamesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /all/four/nom [get]
func (h *FournisseurHandler) Names(c echo.Context) error {
	names, err := h.fournisseurService.ListNames(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if names == nil {
		names = []repository.FournisseurName{}
	}

	return c.JSON(http.StatusOK, FournisseurNamesResponse{Fournisseurs: names})
}

// Get godoc
// @Summary Fetch a supplier with its transaction and beneficiaries
// @Tags fournisseurs
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} FournisseurResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /four/{id} [get]
func (h *FournisseurHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	fournisseur, err := h.fournisseurService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toFournisseurResponse(fournisseur, true))
}

// Update godoc
// @Summary Partially update a supplier, optionally replacing its beneficiaries
// @Tags fournisseurs
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param request body UpdateFournisseurRequest true "Fields to change"
// @Success 200 {object} FournisseurResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /update/four/{id} [put]
func (h *FournisseurHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateFournisseurRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	update := service.FournisseurUpdate{
		Nom:           req.Nom,
		TauxJour:      req.TauxJour,
		QuantiteUSDT:  req.QuantiteUSDT,
		TransactionID: req.TransactionID,
	}
	if req.Beneficiaires != nil {
		inputs := make([]service.BeneficiaireInput, 0, len(*req.Beneficiaires))
		for _, entry := range *req.Beneficiaires {
			inputs = append(inputs, service.BeneficiaireInput{
				Nom:            entry.Nom,
				CommissionUSDT: entry.CommissionUSDT,
			})
		}
		update.Beneficiaires = &inputs
	}

	fournisseur, err := h.fournisseurService.Update(c.Request().Context(), id, update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toFournisseurResponse(fournisseur, false))
}

// Delete godoc
// @Summary Delete a supplier and its beneficiaries
// @Tags fournisseurs
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /delete/four/{id} [delete]
func (h *FournisseurHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.fournisseurService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "fournisseur deleted"})
}
