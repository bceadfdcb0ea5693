package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"changex/internal/cache"
	"changex/internal/errors"
	"changex/internal/model"
	"changex/internal/repository"
)

// BeneficiaireService handles beneficiary operations. Suppliers are referenced
// by their unique name on the wire.
type BeneficiaireService interface {
	Create(ctx context.Context, nom string, commissionUSDT decimal.Decimal, fournisseurNom string) (*model.Beneficiaire, error)
	Get(ctx context.Context, id uint) (*model.Beneficiaire, error)
	List(ctx context.Context) ([]model.Beneficiaire, error)
	Update(ctx context.Context, id uint, nom string, commissionUSDT decimal.Decimal, fournisseurNom string) (*model.Beneficiaire, error)
	Delete(ctx context.Context, id uint) error
}

type beneficiaireService struct {
	beneficiaireRepo repository.BeneficiaireRepository
	fournisseurRepo  repository.FournisseurRepository
	cache            *cache.Client
}

// NewBeneficiaireService creates a new beneficiary service.
func NewBeneficiaireService(
	beneficiaireRepo repository.BeneficiaireRepository,
	fournisseurRepo repository.FournisseurRepository,
	cache *cache.Client,
) BeneficiaireService {
	return &beneficiaireService{
		beneficiaireRepo: beneficiaireRepo,
		fournisseurRepo:  fournisseurRepo,
		cache:            cache,
	}
}

// Create persists a beneficiary under the supplier with the given name.
func (s *beneficiaireService) Create(ctx context.Context, nom string, commissionUSDT decimal.Decimal, fournisseurNom string) (*model.Beneficiaire, error) {
	fournisseur, err := s.fournisseurRepo.FindByNom(ctx, fournisseurNom)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFournisseurNotFound
		}
		return nil, err
	}

	existing, err := s.beneficiaireRepo.FindByNom(ctx, nom)
	if err == nil && existing != nil {
		return nil, errors.ErrBeneficiaireNameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check beneficiaire name: %w", err)
	}

	beneficiaire := &model.Beneficiaire{
		Nom:            nom,
		CommissionUSDT: commissionUSDT.Round(2),
		FournisseurID:  fournisseur.ID,
		Fournisseur:    fournisseur,
	}

	if err := s.beneficiaireRepo.Create(ctx, beneficiaire); err != nil {
		return nil, fmt.Errorf("create beneficiaire: %w", err)
	}

	_ = s.cache.Delete(ctx, totalBeneficiairesKey)
	return beneficiaire, nil
}

// Get returns a beneficiary with its supplier details.
func (s *beneficiaireService) Get(ctx context.Context, id uint) (*model.Beneficiaire, error) {
	beneficiaire, err := s.beneficiaireRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBeneficiaireNotFound
		}
		return nil, err
	}
	return beneficiaire, nil
}

// List returns all beneficiaries with their suppliers. An empty table reads as
// not found, which the dashboard relies on.
func (s *beneficiaireService) List(ctx context.Context) ([]model.Beneficiaire, error) {
	beneficiaires, err := s.beneficiaireRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(beneficiaires) == 0 {
		return nil, errors.ErrNoBeneficiaires
	}
	return beneficiaires, nil
}

// Update replaces a beneficiary's fields, validating the referenced supplier
// before touching the row.
func (s *beneficiaireService) Update(ctx context.Context, id uint, nom string, commissionUSDT decimal.Decimal, fournisseurNom string) (*model.Beneficiaire, error) {
	fournisseur, err := s.fournisseurRepo.FindByNom(ctx, fournisseurNom)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFournisseurNotFound
		}
		return nil, err
	}

	beneficiaire, err := s.beneficiaireRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBeneficiaireNotFound
		}
		return nil, err
	}

	if nom != beneficiaire.Nom {
		existing, err := s.beneficiaireRepo.FindByNom(ctx, nom)
		if err == nil && existing != nil {
			return nil, errors.ErrBeneficiaireNameTaken
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check beneficiaire name: %w", err)
		}
	}

	beneficiaire.Nom = nom
	beneficiaire.CommissionUSDT = commissionUSDT.Round(2)
	beneficiaire.FournisseurID = fournisseur.ID
	beneficiaire.Fournisseur = fournisseur

	if err := s.beneficiaireRepo.Update(ctx, beneficiaire); err != nil {
		return nil, fmt.Errorf("update beneficiaire: %w", err)
	}

	return beneficiaire, nil
}

// Delete removes a beneficiary.
func (s *beneficiaireService) Delete(ctx context.Context, id uint) error {
	if _, err := s.beneficiaireRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrBeneficiaireNotFound
		}
		return err
	}

	if err := s.beneficiaireRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete beneficiaire: %w", err)
	}

	_ = s.cache.Delete(ctx, totalBeneficiairesKey)
	return nil
}
