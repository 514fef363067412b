package sellerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/markethub/sellerpay/internal/domain"
)

type SellerRepo interface {
	FindByID(ctx context.Context, sellerID int) (*domain.Seller, error)
}

type PayoutRepo interface {
	FindPayoutsBySellerID(ctx context.Context, sellerID int) ([]domain.Payout, error)
}

var (
	ErrSellerNotFound = errors.New("seller not found")
)

type Service struct {
	sellerRepo SellerRepo
	payoutRepo PayoutRepo
}

func New(sellerRepo SellerRepo, payoutRepo PayoutRepo) *Service {
	return &Service{
		sellerRepo: sellerRepo,
		payoutRepo: payoutRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, sellerID int) (*domain.Seller, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		zap.L().Error("failed to get seller balance", zap.Error(err))
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}
	return seller, nil
}

func (s *Service) GetPayouts(ctx context.Context, sellerID int) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.FindPayoutsBySellerID(ctx, sellerID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
