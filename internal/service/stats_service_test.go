package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Totals(t *testing.T) {
	mockTransactionRepo := new(MockTransactionRepository)
	mockFournisseurRepo := new(MockFournisseurRepository)
	mockBeneficiaireRepo := new(MockBeneficiaireRepository)

	mockTransactionRepo.On("Count", mock.Anything).Return(int64(3), nil)
	mockFournisseurRepo.On("Count", mock.Anything).Return(int64(7), nil)
	mockBeneficiaireRepo.On("Count", mock.Anything).Return(int64(0), nil)

	service := NewStatsService(mockTransactionRepo, mockFournisseurRepo, mockBeneficiaireRepo, nil)

	transactions, err := service.TotalTransactions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), transactions)

	fournisseurs, err := service.TotalFournisseurs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), fournisseurs)

	beneficiaires, err := service.TotalBeneficiaires(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), beneficiaires)
}
