package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"changex/internal/model"
)

// TransactionRepository defines transaction persistence operations.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	Update(ctx context.Context, transaction *model.Transaction) error
	FindByID(ctx context.Context, id uint) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) Update(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(transaction).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) List(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := r.db.WithContext(ctx).Order("id").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// Delete removes a transaction and everything it owns. Children are deleted
// first inside one database transaction so a failure leaves no partial state.
func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fournisseurIDs []uint
		if err := tx.Model(&model.Fournisseur{}).
			Where("transaction_id = ?", id).
			Pluck("id", &fournisseurIDs).Error; err != nil {
			return err
		}
		if len(fournisseurIDs) > 0 {
			if err := tx.Where("fournisseur_id IN ?", fournisseurIDs).
				Delete(&model.Beneficiaire{}).Error; err != nil {
				return err
			}
			if err := tx.Where("transaction_id = ?", id).
				Delete(&model.Fournisseur{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Transaction{}, id).Error
	})
}

func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
