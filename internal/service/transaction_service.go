package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"changex/internal/cache"
	"changex/internal/errors"
	"changex/internal/model"
	"changex/internal/repository"
)

// TransactionService handles conversion transaction operations.
type TransactionService interface {
	Create(ctx context.Context, montantFCFA, tauxConv int64) (*model.Transaction, error)
	Update(ctx context.Context, id uint, montantFCFA, tauxConv int64) (*model.Transaction, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Transaction, error)
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	cache           *cache.Client
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo repository.TransactionRepository, cache *cache.Client) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// montantUSDT computes the USDT value of an FCFA amount at the agreed rate,
// rounded half away from zero to two decimals.
func montantUSDT(montantFCFA, tauxConv int64) decimal.Decimal {
	return decimal.NewFromInt(montantFCFA).DivRound(decimal.NewFromInt(tauxConv), 2)
}

// Create persists a transaction with its derived USDT amount and timestamp.
func (s *transactionService) Create(ctx context.Context, montantFCFA, tauxConv int64) (*model.Transaction, error) {
	if montantFCFA <= 0 || tauxConv <= 0 {
		return nil, errors.ErrInvalidInput
	}

	transaction := &model.Transaction{
		MontantFCFA:     montantFCFA,
		TauxConvenu:     tauxConv,
		MontantUSDT:     montantUSDT(montantFCFA, tauxConv),
		DateTransaction: time.Now(),
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	_ = s.cache.Delete(ctx, totalTransactionsKey)
	return transaction, nil
}

// Update replaces amount and rate, recomputing the USDT amount and refreshing
// the timestamp.
func (s *transactionService) Update(ctx context.Context, id uint, montantFCFA, tauxConv int64) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, err
	}

	if montantFCFA <= 0 || tauxConv <= 0 {
		return nil, errors.ErrInvalidInput
	}

	transaction.MontantFCFA = montantFCFA
	transaction.TauxConvenu = tauxConv
	transaction.MontantUSDT = montantUSDT(montantFCFA, tauxConv)
	transaction.DateTransaction = time.Now()

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	return transaction, nil
}

// Delete removes a transaction together with its suppliers and their
// beneficiaries.
func (s *transactionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.transactionRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTransactionNotFound
		}
		return err
	}

	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	// cascade touches all three dashboard counts
	_ = s.cache.Delete(ctx, totalTransactionsKey, totalFournisseursKey, totalBeneficiairesKey)
	return nil
}

// List returns every transaction. An empty table reads as not found, which the
// dashboard relies on.
func (s *transactionService) List(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, errors.ErrNoTransactions
	}
	return transactions, nil
}
