package service

import (
	"context"
	"strconv"
	"time"

	"changex/internal/cache"
	"changex/internal/repository"
)

const (
	totalTransactionsKey  = "total:transactions"
	totalFournisseursKey  = "total:fournisseurs"
	totalBeneficiairesKey = "total:beneficiaires"

	totalsCacheTTL = 30 * time.Second
)

// StatsService serves the dashboard row counts, read through the cache.
type StatsService interface {
	TotalTransactions(ctx context.Context) (int64, error)
	TotalFournisseurs(ctx context.Context) (int64, error)
	TotalBeneficiaires(ctx context.Context) (int64, error)
}

type statsService struct {
	transactionRepo  repository.TransactionRepository
	fournisseurRepo  repository.FournisseurRepository
	beneficiaireRepo repository.BeneficiaireRepository
	cache            *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(
	transactionRepo repository.TransactionRepository,
	fournisseurRepo repository.FournisseurRepository,
	beneficiaireRepo repository.BeneficiaireRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		transactionRepo:  transactionRepo,
		fournisseurRepo:  fournisseurRepo,
		beneficiaireRepo: beneficiaireRepo,
		cache:            cache,
	}
}

func (s *statsService) TotalTransactions(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, totalTransactionsKey, s.transactionRepo.Count)
}

func (s *statsService) TotalFournisseurs(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, totalFournisseursKey, s.fournisseurRepo.Count)
}

func (s *statsService) TotalBeneficiaires(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, totalBeneficiairesKey, s.beneficiaireRepo.Count)
}

func (s *statsService) cachedCount(ctx context.Context, key string, count func(context.Context) (int64, error)) (int64, error) {
	if data, _ := s.cache.Get(ctx, key); data != nil {
		if cached, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			return cached, nil
		}
	}

	total, err := count(ctx)
	if err != nil {
		return 0, err
	}

	_ = s.cache.Set(ctx, key, []byte(strconv.FormatInt(total, 10)), totalsCacheTTL)
	return total, nil
}
