package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"changex/internal/model"
)

// BeneficiaireRepository defines beneficiary persistence operations.
type BeneficiaireRepository interface {
	Create(ctx context.Context, beneficiaire *model.Beneficiaire) error
	Update(ctx context.Context, beneficiaire *model.Beneficiaire) error
	FindByID(ctx context.Context, id uint) (*model.Beneficiaire, error)
	FindByNom(ctx context.Context, nom string) (*model.Beneficiaire, error)
	List(ctx context.Context) ([]model.Beneficiaire, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type beneficiaireRepository struct {
	db *gorm.DB
}

// NewBeneficiaireRepository creates a new beneficiary repository.
func NewBeneficiaireRepository(db *gorm.DB) BeneficiaireRepository {
	return &beneficiaireRepository{db: db}
}

func (r *beneficiaireRepository) Create(ctx context.Context, beneficiaire *model.Beneficiaire) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(beneficiaire).Error
}

func (r *beneficiaireRepository) Update(ctx context.Context, beneficiaire *model.Beneficiaire) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(beneficiaire).Error
}

func (r *beneficiaireRepository) FindByID(ctx context.Context, id uint) (*model.Beneficiaire, error) {
	var beneficiaire model.Beneficiaire
	if err := r.db.WithContext(ctx).
		Preload("Fournisseur").
		First(&beneficiaire, id).Error; err != nil {
		return nil, err
	}
	return &beneficiaire, nil
}

func (r *beneficiaireRepository) FindByNom(ctx context.Context, nom string) (*model.Beneficiaire, error) {
	var beneficiaire model.Beneficiaire
	if err := r.db.WithContext(ctx).Where("nom = ?", nom).First(&beneficiaire).Error; err != nil {
		return nil, err
	}
	return &beneficiaire, nil
}

func (r *beneficiaireRepository) List(ctx context.Context) ([]model.Beneficiaire, error) {
	var beneficiaires []model.Beneficiaire
	if err := r.db.WithContext(ctx).
		Preload("Fournisseur").
		Order("id").
		Find(&beneficiaires).Error; err != nil {
		return nil, err
	}
	return beneficiaires, nil
}

func (r *beneficiaireRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Beneficiaire{}, id).Error
}

func (r *beneficiaireRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Beneficiaire{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
