package service

import (
	"github.com/shopspring/decimal"

	"changex/internal/errors"
)

// CalculInput carries the raw figures of a prospective conversion.
type CalculInput struct {
	MontantFCFA     decimal.Decimal
	TauxConvenu     decimal.Decimal
	TauxFournisseur decimal.Decimal
	QuantiteUSDT    decimal.Decimal
	Commission      decimal.Decimal
}

// CalculResult holds the derived figures, all rounded to two decimals.
type CalculResult struct {
	MontantUSDT          decimal.Decimal
	BeneficeUSDT         decimal.Decimal
	BeneficeTotalFCFA    decimal.Decimal
	BeneficeBeneficiaire decimal.Decimal
}

// CalculService performs the stateless conversion and profit arithmetic.
type CalculService interface {
	Calculer(input CalculInput) (*CalculResult, error)
}

type calculService struct{}

// NewCalculService creates a new calculation service.
func NewCalculService() CalculService {
	return &calculService{}
}

// Calculer derives the USDT amount, the per-USDT margin between the agreed
// and supplier rates, the total margin in FCFA, and the beneficiary payout.
func (s *calculService) Calculer(input CalculInput) (*CalculResult, error) {
	if input.TauxConvenu.IsZero() {
		return nil, errors.ErrZeroRate
	}

	beneficeUSDT := input.TauxConvenu.Sub(input.TauxFournisseur)

	return &CalculResult{
		MontantUSDT:          input.MontantFCFA.DivRound(input.TauxConvenu, 2),
		BeneficeUSDT:         beneficeUSDT.Round(2),
		BeneficeTotalFCFA:    beneficeUSDT.Mul(input.QuantiteUSDT).Round(2),
		BeneficeBeneficiaire: input.Commission.Mul(input.QuantiteUSDT).Round(2),
	}, nil
}
