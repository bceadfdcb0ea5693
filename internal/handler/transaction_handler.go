package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"changex/internal/errors"
	"changex/internal/model"
	"changex/internal/service"
)

// TransactionHandler handles conversion transaction endpoints.
type TransactionHandler struct {
	transactionService service.TransactionService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents a create or update request.
type TransactionRequest struct {
	MontantFCFA int64 `json:"montantFCFA" validate:"required,gt=0"`
	TauxConv    int64 `json:"tauxConv" validate:"required,gt=0"`
}

// TransactionListResponse wraps the transaction list.
type TransactionListResponse struct {
	Transactions []model.Transaction `json:"transactions"`
}

// Add godoc
// @Summary Record a conversion transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Amount in FCFA and agreed rate"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trans/add [post]
func (h *TransactionHandler) Add(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "montantFCFA and tauxConv must be positive")
	}

	transaction, err := h.transactionService.Create(c.Request().Context(), req.MontantFCFA, req.TauxConv)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, transaction)
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body TransactionRequest true "New amount and rate"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trans/update/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "montantFCFA and tauxConv must be positive")
	}

	transaction, err := h.transactionService.Update(c.Request().Context(), id, req.MontantFCFA, req.TauxConv)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, transaction)
}

// Delete godoc
// @Summary Delete a transaction and everything it owns
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /trans/delete/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.transactionService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "transaction deleted"})
}

// All godoc
// @Summary List all transactions
// @Tags transactions
// @Produce json
// @Success 200 {object} TransactionListResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trans/all [get]
func (h *TransactionHandler) All(c echo.Context) error {
	transactions, err := h.transactionService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, TransactionListResponse{Transactions: transactions})
}

// parseID reads the numeric path id shared by all entity endpoints.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
