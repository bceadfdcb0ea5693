package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"changex/internal/model"
)

// FournisseurName is a lightweight projection for name listings.
type FournisseurName struct {
	ID  uint   `json:"id"`
	Nom string `json:"nom"`
}

// FournisseurRepository defines supplier persistence operations.
type FournisseurRepository interface {
	Create(ctx context.Context, fournisseur *model.Fournisseur) error
	Update(ctx context.Context, fournisseur *model.Fournisseur) error
	// UpdateWithBeneficiaires saves the supplier and, when beneficiaires is
	// non-nil, replaces its whole beneficiary collection in the same
	// database transaction.
	UpdateWithBeneficiaires(ctx context.Context, fournisseur *model.Fournisseur, beneficiaires []model.Beneficiaire) error
	FindByID(ctx context.Context, id uint) (*model.Fournisseur, error)
	FindByNom(ctx context.Context, nom string) (*model.Fournisseur, error)
	List(ctx context.Context) ([]model.Fournisseur, error)
	ListNames(ctx context.Context) ([]FournisseurName, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type fournisseurRepository struct {
	db *gorm.DB
}

// NewFournisseurRepository creates a new supplier repository.
func NewFournisseurRepository(db *gorm.DB) FournisseurRepository {
	return &fournisseurRepository{db: db}
}

func (r *fournisseurRepository) Create(ctx context.Context, fournisseur *model.Fournisseur) error {
	return r.db.WithContext(ctx).Create(fournisseur).Error
}

func (r *fournisseurRepository) Update(ctx context.Context, fournisseur *model.Fournisseur) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(fournisseur).Error
}

func (r *fournisseurRepository) UpdateWithBeneficiaires(ctx context.Context, fournisseur *model.Fournisseur, beneficiaires []model.Beneficiaire) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(fournisseur).Error; err != nil {
			return err
		}
		if beneficiaires == nil {
			return nil
		}
		if err := tx.Where("fournisseur_id = ?", fournisseur.ID).
			Delete(&model.Beneficiaire{}).Error; err != nil {
			return err
		}
		for i := range beneficiaires {
			beneficiaires[i].ID = 0
			beneficiaires[i].FournisseurID = fournisseur.ID
			if err := tx.Omit(clause.Associations).Create(&beneficiaires[i]).Error; err != nil {
				return err
			}
		}
		fournisseur.Beneficiaires = beneficiaires
		return nil
	})
}

func (r *fournisseurRepository) FindByID(ctx context.Context, id uint) (*model.Fournisseur, error) {
	var fournisseur model.Fournisseur
	if err := r.db.WithContext(ctx).
		Preload("Transaction").
		Preload("Beneficiaires").
		First(&fournisseur, id).Error; err != nil {
		return nil, err
	}
	return &fournisseur, nil
}

func (r *fournisseurRepository) FindByNom(ctx context.Context, nom string) (*model.Fournisseur, error) {
	var fournisseur model.Fournisseur
	if err := r.db.WithContext(ctx).Where("nom = ?", nom).First(&fournisseur).Error; err != nil {
		return nil, err
	}
	return &fournisseur, nil
}

func (r *fournisseurRepository) List(ctx context.Context) ([]model.Fournisseur, error) {
	var fournisseurs []model.Fournisseur
	if err := r.db.WithContext(ctx).
		Preload("Beneficiaires").
		Order("id").
		Find(&fournisseurs).Error; err != nil {
		return nil, err
	}
	return fournisseurs, nil
}

func (r *fournisseurRepository) ListNames(ctx context.Context) ([]FournisseurName, error) {
	var names []FournisseurName
	if err := r.db.WithContext(ctx).Model(&model.Fournisseur{}).
		Select("id", "nom").
		Order("id").
		Find(&names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// Delete removes a supplier and its beneficiaries in one database transaction.
func (r *fournisseurRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fournisseur_id = ?", id).
			Delete(&model.Beneficiaire{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Fournisseur{}, id).Error
	})
}

func (r *fournisseurRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Fournisseur{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
