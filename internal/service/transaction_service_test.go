package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"changex/internal/errors"
	"changex/internal/model"
)

func TestTransactionService_Create(t *testing.T) {
	tests := []struct {
		name          string
		montantFCFA   int64
		tauxConv      int64
		setupMock     func(*MockTransactionRepository)
		expectedUSDT  string
		expectedError error
	}{
		{
			name:        "computes the USDT amount",
			montantFCFA: 100000,
			tauxConv:    650,
			setupMock: func(m *MockTransactionRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)
			},
			expectedUSDT: "153.85",
		},
		{
			name:        "exact division",
			montantFCFA: 130000,
			tauxConv:    650,
			setupMock: func(m *MockTransactionRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)
			},
			expectedUSDT: "200",
		},
		{
			name:          "zero amount rejected",
			montantFCFA:   0,
			tauxConv:      650,
			setupMock:     func(m *MockTransactionRepository) {},
			expectedError: errors.ErrInvalidInput,
		},
		{
			name:          "negative rate rejected",
			montantFCFA:   100000,
			tauxConv:      -5,
			setupMock:     func(m *MockTransactionRepository) {},
			expectedError: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTransactionRepository)
			tt.setupMock(mockRepo)

			service := NewTransactionService(mockRepo, nil)
			transaction, err := service.Create(context.Background(), tt.montantFCFA, tt.tauxConv)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUSDT, transaction.MontantUSDT.String())
				assert.False(t, transaction.DateTransaction.IsZero())
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTransactionService_Update(t *testing.T) {
	t.Run("recomputes the USDT amount", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Transaction{
			ID:          1,
			MontantFCFA: 100000,
			TauxConvenu: 650,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)

		service := NewTransactionService(mockRepo, nil)
		transaction, err := service.Update(context.Background(), 1, 200000, 640)

		assert.NoError(t, err)
		assert.Equal(t, int64(200000), transaction.MontantFCFA)
		assert.Equal(t, "312.5", transaction.MontantUSDT.String())
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		service := NewTransactionService(mockRepo, nil)
		_, err := service.Update(context.Background(), 42, 100000, 650)

		assert.Equal(t, errors.ErrTransactionNotFound, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid fields leave the row untouched", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Transaction{ID: 1}, nil)

		service := NewTransactionService(mockRepo, nil)
		_, err := service.Update(context.Background(), 1, 100000, 0)

		assert.Equal(t, errors.ErrInvalidInput, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestTransactionService_Delete(t *testing.T) {
	t.Run("cascades through the repository", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Transaction{ID: 1}, nil)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		service := NewTransactionService(mockRepo, nil)
		err := service.Delete(context.Background(), 1)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewTransactionService(mockRepo, nil)
		err := service.Delete(context.Background(), 9)

		assert.Equal(t, errors.ErrTransactionNotFound, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTransactionService_List(t *testing.T) {
	t.Run("empty table reads as not found", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("List", mock.Anything).Return([]model.Transaction{}, nil)

		service := NewTransactionService(mockRepo, nil)
		_, err := service.List(context.Background())

		assert.Equal(t, errors.ErrNoTransactions, err)
	})

	t.Run("returns all rows", func(t *testing.T) {
		mockRepo := new(MockTransactionRepository)
		mockRepo.On("List", mock.Anything).Return([]model.Transaction{{ID: 1}, {ID: 2}}, nil)

		service := NewTransactionService(mockRepo, nil)
		transactions, err := service.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
	})
}
