package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"changex/internal/service"
)

func TestCalculHandler_Calculer(t *testing.T) {
	e := echo.New()
	h := NewCalculHandler(service.NewCalculService())

	t.Run("computes all figures", func(t *testing.T) {
		body := `{"montantFCFA":100000,"tauxConvenu":650,"tauxFournisseur":600,"quantiteUSDT":100,"commission":2.5}`
		req := httptest.NewRequest(http.MethodPost, "/calculer", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, h.Calculer(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"montantUSDT":"153.85"`)
		assert.Contains(t, rec.Body.String(), `"beneficeTotalFCFA":"5000"`)
		assert.Contains(t, rec.Body.String(), `"beneficeParBeneficiaire":"250"`)
	})

	t.Run("zero agreed rate is rejected", func(t *testing.T) {
		body := `{"montantFCFA":100000,"tauxConvenu":0}`
		req := httptest.NewRequest(http.MethodPost, "/calculer", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Calculer(c)
		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/calculer", strings.NewReader(`{"montantFCFA":`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Calculer(c)
		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
