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

// BeneficiaireInput is one entry of a replacement beneficiary collection.
// Both fields are required; a nil field makes the whole update invalid.
type BeneficiaireInput struct {
	Nom            *string
	CommissionUSDT *decimal.Decimal
}

// FournisseurUpdate carries a partial supplier update. Nil fields are left
// untouched. A non-nil Beneficiaires replaces the entire collection.
type FournisseurUpdate struct {
	Nom           *string
	TauxJour      *int64
	QuantiteUSDT  *decimal.Decimal
	TransactionID *uint
	Beneficiaires *[]BeneficiaireInput
}

// FournisseurService handles supplier operations.
type FournisseurService interface {
	Create(ctx context.Context, nom string, tauxJour int64, quantiteUSDT decimal.Decimal, transactionID uint) (*model.Fournisseur, error)
	Get(ctx context.Context, id uint) (*model.Fournisseur, error)
	List(ctx context.Context) ([]model.Fournisseur, error)
	ListNames(ctx context.Context) ([]repository.FournisseurName, error)
	Update(ctx context.Context, id uint, update FournisseurUpdate) (*model.Fournisseur, error)
	Delete(ctx context.Context, id uint) error
}

type fournisseurService struct {
	fournisseurRepo repository.FournisseurRepository
	transactionRepo repository.TransactionRepository
	cache           *cache.Client
}

// NewFournisseurService creates a new supplier service.
func NewFournisseurService(
	fournisseurRepo repository.FournisseurRepository,
	transactionRepo repository.TransactionRepository,
	cache *cache.Client,
) FournisseurService {
	return &fournisseurService{
		fournisseurRepo: fournisseurRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Create persists a supplier under an existing transaction.
func (s *fournisseurService) Create(ctx context.Context, nom string, tauxJour int64, quantiteUSDT decimal.Decimal, transactionID uint) (*model.Fournisseur, error) {
	if _, err := s.transactionRepo.FindByID(ctx, transactionID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, err
	}

	existing, err := s.fournisseurRepo.FindByNom(ctx, nom)
	if err == nil && existing != nil {
		return nil, errors.ErrFournisseurNameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check fournisseur name: %w", err)
	}

	fournisseur := &model.Fournisseur{
		Nom:           nom,
		TauxJour:      tauxJour,
		QuantiteUSDT:  quantiteUSDT.Round(2),
		TransactionID: transactionID,
	}

	if err := s.fournisseurRepo.Create(ctx, fournisseur); err != nil {
		return nil, fmt.Errorf("create fournisseur: %w", err)
	}

	_ = s.cache.Delete(ctx, totalFournisseursKey)
	return fournisseur, nil
}

// Get returns a supplier with its transaction and beneficiaries.
func (s *fournisseurService) Get(ctx context.Context, id uint) (*model.Fournisseur, error) {
	fournisseur, err := s.fournisseurRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFournisseurNotFound
		}
		return nil, err
	}
	return fournisseur, nil
}

// List returns all suppliers, each with its beneficiaries.
func (s *fournisseurService) List(ctx context.Context) ([]model.Fournisseur, error) {
	return s.fournisseurRepo.List(ctx)
}

// ListNames returns id/nom pairs for selection widgets.
func (s *fournisseurService) ListNames(ctx context.Context) ([]repository.FournisseurName, error) {
	return s.fournisseurRepo.ListNames(ctx)
}

// Update applies a partial field update and, when a beneficiary collection is
// supplied, replaces it wholesale. Every entry is validated before anything is
// written so a malformed entry aborts the whole request.
func (s *fournisseurService) Update(ctx context.Context, id uint, update FournisseurUpdate) (*model.Fournisseur, error) {
	fournisseur, err := s.fournisseurRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFournisseurNotFound
		}
		return nil, err
	}

	var replacement []model.Beneficiaire
	if update.Beneficiaires != nil {
		replacement = make([]model.Beneficiaire, 0, len(*update.Beneficiaires))
		for _, input := range *update.Beneficiaires {
			if input.Nom == nil || *input.Nom == "" || input.CommissionUSDT == nil {
				return nil, errors.ErrInvalidInput
			}
			replacement = append(replacement, model.Beneficiaire{
				Nom:            *input.Nom,
				CommissionUSDT: input.CommissionUSDT.Round(2),
			})
		}
	}

	if update.Nom != nil && *update.Nom != fournisseur.Nom {
		existing, err := s.fournisseurRepo.FindByNom(ctx, *update.Nom)
		if err == nil && existing != nil {
			return nil, errors.ErrFournisseurNameTaken
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check fournisseur name: %w", err)
		}
		fournisseur.Nom = *update.Nom
	}
	if update.TauxJour != nil {
		fournisseur.TauxJour = *update.TauxJour
	}
	if update.QuantiteUSDT != nil {
		fournisseur.QuantiteUSDT = update.QuantiteUSDT.Round(2)
	}
	if update.TransactionID != nil {
		if _, err := s.transactionRepo.FindByID(ctx, *update.TransactionID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrTransactionNotFound
			}
			return nil, err
		}
		fournisseur.TransactionID = *update.TransactionID
		fournisseur.Transaction = nil
	}

	if update.Beneficiaires == nil {
		if err := s.fournisseurRepo.Update(ctx, fournisseur); err != nil {
			return nil, fmt.Errorf("update fournisseur: %w", err)
		}
		return fournisseur, nil
	}

	if err := s.fournisseurRepo.UpdateWithBeneficiaires(ctx, fournisseur, replacement); err != nil {
		return nil, fmt.Errorf("update fournisseur with beneficiaires: %w", err)
	}

	_ = s.cache.Delete(ctx, totalBeneficiairesKey)
	return fournisseur, nil
}

// Delete removes a supplier and its beneficiaries.
func (s *fournisseurService) Delete(ctx context.Context, id uint) error {
	if _, err := s.fournisseurRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrFournisseurNotFound
		}
		return err
	}

	if err := s.fournisseurRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete fournisseur: %w", err)
	}

	_ = s.cache.Delete(ctx, totalFournisseursKey, totalBeneficiairesKey)
	return nil
}
