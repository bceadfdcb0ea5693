package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"changex/internal/errors"
	"changex/internal/model"
)

func TestBeneficiaireService_Create(t *testing.T) {
	commission := decimal.RequireFromString("2.5")

	tests := []struct {
		name          string
		setupMock     func(*MockBeneficiaireRepository, *MockFournisseurRepository)
		expectedError error
	}{
		{
			name: "resolves the supplier by name",
			setupMock: func(mb *MockBeneficiaireRepository, mf *MockFournisseurRepository) {
				mf.On("FindByNom", mock.Anything, "Fournisseur A").Return(&model.Fournisseur{ID: 5, Nom: "Fournisseur A"}, nil)
				mb.On("FindByNom", mock.Anything, "Benef 1").Return(nil, gorm.ErrRecordNotFound)
				mb.On("Create", mock.Anything, mock.AnythingOfType("*model.Beneficiaire")).Return(nil)
			},
		},
		{
			name: "unknown supplier",
			setupMock: func(mb *MockBeneficiaireRepository, mf *MockFournisseurRepository) {
				mf.On("FindByNom", mock.Anything, "Fournisseur A").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrFournisseurNotFound,
		},
		{
			name: "duplicate name",
			setupMock: func(mb *MockBeneficiaireRepository, mf *MockFournisseurRepository) {
				mf.On("FindByNom", mock.Anything, "Fournisseur A").Return(&model.Fournisseur{ID: 5, Nom: "Fournisseur A"}, nil)
				mb.On("FindByNom", mock.Anything, "Benef 1").Return(&model.Beneficiaire{Nom: "Benef 1"}, nil)
			},
			expectedError: errors.ErrBeneficiaireNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBeneficiaireRepo := new(MockBeneficiaireRepository)
			mockFournisseurRepo := new(MockFournisseurRepository)
			tt.setupMock(mockBeneficiaireRepo, mockFournisseurRepo)

			service := NewBeneficiaireService(mockBeneficiaireRepo, mockFournisseurRepo, nil)
			beneficiaire, err := service.Create(context.Background(), "Benef 1", commission, "Fournisseur A")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, beneficiaire)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(5), beneficiaire.FournisseurID)
				assert.Equal(t, "Fournisseur A", beneficiaire.Fournisseur.Nom)
			}

			mockBeneficiaireRepo.AssertExpectations(t)
			mockFournisseurRepo.AssertExpectations(t)
		})
	}
}

func TestBeneficiaireService_Update(t *testing.T) {
	commission := decimal.RequireFromString("3")

	t.Run("validates the supplier before touching the row", func(t *testing.T) {
		mockBeneficiaireRepo := new(MockBeneficiaireRepository)
		mockFournisseurRepo := new(MockFournisseurRepository)
		mockFournisseurRepo.On("FindByNom", mock.Anything, "Inconnu").Return(nil, gorm.ErrRecordNotFound)

		service := NewBeneficiaireService(mockBeneficiaireRepo, mockFournisseurRepo, nil)
		_, err := service.Update(context.Background(), 1, "Benef 1", commission, "Inconnu")

		assert.Equal(t, errors.ErrFournisseurNotFound, err)
		mockBeneficiaireRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("reassigns the supplier", func(t *testing.T) {
		mockBeneficiaireRepo := new(MockBeneficiaireRepository)
		mockFournisseurRepo := new(MockFournisseurRepository)
		mockFournisseurRepo.On("FindByNom", mock.Anything, "Fournisseur B").Return(&model.Fournisseur{ID: 9, Nom: "Fournisseur B"}, nil)
		mockBeneficiaireRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Beneficiaire{ID: 1, Nom: "Benef 1", FournisseurID: 5}, nil)
		mockBeneficiaireRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Beneficiaire")).Return(nil)

		service := NewBeneficiaireService(mockBeneficiaireRepo, mockFournisseurRepo, nil)
		beneficiaire, err := service.Update(context.Background(), 1, "Benef 1", commission, "Fournisseur B")

		assert.NoError(t, err)
		assert.Equal(t, uint(9), beneficiaire.FournisseurID)
		mockBeneficiaireRepo.AssertExpectations(t)
	})
}

func TestBeneficiaireService_List(t *testing.T) {
	t.Run("empty table reads as not found", func(t *testing.T) {
		mockBeneficiaireRepo := new(MockBeneficiaireRepository)
		mockFournisseurRepo := new(MockFournisseurRepository)
		mockBeneficiaireRepo.On("List", mock.Anything).Return([]model.Beneficiaire{}, nil)

		service := NewBeneficiaireService(mockBeneficiaireRepo, mockFournisseurRepo, nil)
		_, err := service.List(context.Background())

		assert.Equal(t, errors.ErrNoBeneficiaires, err)
	})
}

func TestBeneficiaireService_Delete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		mockBeneficiaireRepo := new(MockBeneficiaireRepository)
		mockFournisseurRepo := new(MockFournisseurRepository)
		mockBeneficiaireRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Beneficiaire{ID: 2}, nil)
		mockBeneficiaireRepo.On("Delete", mock.Anything, uint(2)).Return(nil)

		service := NewBeneficiaireService(mockBeneficiaireRepo, mockFournisseurRepo, nil)
		err := service.Delete(context.Background(), 2)

		assert.NoError(t, err)
		mockBeneficiaireRepo.AssertExpectations(t)
	})

	t.Run("unknown beneficiary", func(t *testing.T) {
		mockBeneficiaireRepo := new(MockBeneficiaireRepository)
		mockFournisseurRepo := new(MockFournisseurRepository)
		mockBeneficiaireRepo.On("FindByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

		service := NewBeneficiaireService(mockBeneficiaireRepo, mockFournisseurRepo, nil)
		err := service.Delete(context.Background(), 4)

		assert.Equal(t, errors.ErrBeneficiaireNotFound, err)
		mockBeneficiaireRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
