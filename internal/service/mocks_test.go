package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"changex/internal/model"
	"changex/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *model.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]model.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFournisseurRepository is a mock implementation of FournisseurRepository.
type MockFournisseurRepository struct {
	mock.Mock
}

func (m *MockFournisseurRepository) Create(ctx context.Context, fournisseur *model.Fournisseur) error {
	args := m.Called(ctx, fournisseur)
	return args.Error(0)
}

func (m *MockFournisseurRepository) Update(ctx context.Context, fournisseur *model.Fournisseur) error {
	args := m.Called(ctx, fournisseur)
	return args.Error(0)
}

func (m *MockFournisseurRepository) UpdateWithBeneficiaires(ctx context.Context, fournisseur *model.Fournisseur, beneficiaires []model.Beneficiaire) error {
	args := m.Called(ctx, fournisseur, beneficiaires)
	return args.Error(0)
}

func (m *MockFournisseurRepository) FindByID(ctx context.Context, id uint) (*model.Fournisseur, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fournisseur), args.Error(1)
}

func (m *MockFournisseurRepository) FindByNom(ctx context.Context, nom string) (*model.Fournisseur, error) {
	args := m.Called(ctx, nom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fournisseur), args.Error(1)
}

func (m *MockFournisseurRepository) List(ctx context.Context) ([]model.Fournisseur, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Fournisseur), args.Error(1)
}

func (m *MockFournisseurRepository) ListNames(ctx context.Context) ([]repository.FournisseurName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FournisseurName), args.Error(1)
}

func (m *MockFournisseurRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFournisseurRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBeneficiaireRepository is a mock implementation of BeneficiaireRepository.
type MockBeneficiaireRepository struct {
	mock.Mock
}

func (m *MockBeneficiaireRepository) Create(ctx context.Context, beneficiaire *model.Beneficiaire) error {
	args := m.Called(ctx, beneficiaire)
	return args.Error(0)
}

func (m *MockBeneficiaireRepository) Update(ctx context.Context, beneficiaire *model.Beneficiaire) error {
	args := m.Called(ctx, beneficiaire)
	return args.Error(0)
}

func (m *MockBeneficiaireRepository) FindByID(ctx context.Context, id uint) (*model.Beneficiaire, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiaire), args.Error(1)
}

func (m *MockBeneficiaireRepository) FindByNom(ctx context.Context, nom string) (*model.Beneficiaire, error) {
	args := m.Called(ctx, nom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Beneficiaire), args.Error(1)
}

func (m *MockBeneficiaireRepository) List(ctx context.Context) ([]model.Beneficiaire, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Beneficiaire), args.Error(1)
}

func (m *MockBeneficiaireRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBeneficiaireRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
