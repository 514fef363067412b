package payoutservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/markethub/sellerpay/internal/domain"
	"github.com/markethub/sellerpay/internal/pg"
)

type SellerRepo interface {
	FindByID(ctx context.Context, sellerID int) (*domain.Seller, error)
	FindSchedule(ctx context.Context, sellerID int) (*domain.PayoutSchedule, error)
	AddToBalance(ctx context.Context, sellerID int, delta decimal.Decimal) (*domain.Seller, error)
	FindDueSellers(ctx context.Context, payoutDay string, limit uint32) ([]int, error)
}

type PurchaseRepo interface {
	FindEligible(ctx context.Context, sellerID int, cutoff time.Time) ([]domain.Purchase, error)
	FindRefunds(ctx context.Context, purchaseIDs []int) (map[int]domain.Refund, error)
	MarkPaidToSeller(ctx context.Context, purchaseIDs []int) (int64, error)
}

type PayoutRepo interface {
	CreatePayout(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	FindPayoutsBySellerID(ctx context.Context, sellerID int) ([]domain.Payout, error)
}

var (
	ErrSellerNotFound        = errors.New("seller not found")
	ErrNoSchedule            = errors.New("seller has no payout schedule")
	ErrRefundExceedsPurchase = errors.New("refund amount exceeds purchase amount")
)

// Result reports one payout run: how many purchases were settled and the
// net amount credited to the seller balance.
type Result struct {
	SettledCount int
	AmountPaid   decimal.Decimal
}

type Service struct {
	sellerRepo   SellerRepo
	purchaseRepo PurchaseRepo
	payoutRepo   PayoutRepo
	txManager    pg.TXManager

	// requireProcessedRefunds narrows the deduction to finalized refunds.
	// Off by default: any recorded refund amount nets against its purchase.
	requireProcessedRefunds bool
}

func New(sellerRepo SellerRepo, purchaseRepo PurchaseRepo, payoutRepo PayoutRepo, txManager pg.TXManager, requireProcessedRefunds bool) *Service {
	return &Service{
		sellerRepo:              sellerRepo,
		purchaseRepo:            purchaseRepo,
		payoutRepo:              payoutRepo,
		txManager:               txManager,
		requireProcessedRefunds: requireProcessedRefunds,
	}
}

// RunPayout settles every purchase of the seller that has cleared the
// schedule's buffer period as of asOf. Selection, refund netting, the flag
// flip and the balance credit happen in one transaction: either every
// selected purchase is marked paid and the balance moves once, or nothing
// changes. Re-running with no new purchases is a no-op.
func (s *Service) RunPayout(ctx context.Context, sellerID int, asOf time.Time) (*Result, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		zap.L().Error("failed to get seller", zap.Error(err))
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}

	schedule, err := s.sellerRepo.FindSchedule(ctx, sellerID)
	if err != nil {
		zap.L().Error("failed to get payout schedule", zap.Error(err))
		return nil, err
	}
	if schedule == nil {
		return nil, ErrNoSchedule
	}

	// Inclusive cutoff: a purchase dated exactly bufferDays ago qualifies.
	cutoff := asOf.AddDate(0, 0, -schedule.BufferDays)

	result := &Result{AmountPaid: decimal.Zero}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		purchases, err := s.purchaseRepo.FindEligible(ctx, sellerID, cutoff)
		if err != nil {
			return err
		}
		if len(purchases) == 0 {
			return nil
		}

		purchaseIDs := make([]int, len(purchases))
		for i, purchase := range purchases {
			purchaseIDs[i] = purchase.ID
		}

		refunds, err := s.purchaseRepo.FindRefunds(ctx, purchaseIDs)
		if err != nil {
			return err
		}

		delta, err := s.calculateDelta(purchases, refunds)
		if err != nil {
			return err
		}

		if _, err := s.purchaseRepo.MarkPaidToSeller(ctx, purchaseIDs); err != nil {
			return err
		}
		if _, err := s.sellerRepo.AddToBalance(ctx, sellerID, delta); err != nil {
			return err
		}

		payout := &domain.Payout{
			SellerID:     sellerID,
			Amount:       delta,
			SettledCount: len(purchases),
			RunDate:      asOf,
		}
		if _, err := s.payoutRepo.CreatePayout(ctx, payout); err != nil {
			return err
		}

		result.SettledCount = len(purchases)
		result.AmountPaid = delta
		return nil
	})
	if err != nil {
		zap.L().Error("payout run failed", zap.Int("sellerID", sellerID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("payout run completed",
		zap.Int("sellerID", sellerID),
		zap.Int("settled", result.SettledCount),
		zap.String("amount", result.AmountPaid.String()),
	)
	return result, nil
}

// calculateDelta sums amount minus refund over the eligible set.
func (s *Service) calculateDelta(purchases []domain.Purchase, refunds map[int]domain.Refund) (decimal.Decimal, error) {
	delta := decimal.Zero
	for _, purchase := range purchases {
		net := purchase.Amount

		refund, ok := refunds[purchase.ID]
		if ok && (refund.Processed || !s.requireProcessedRefunds) {
			if refund.Amount.GreaterThan(purchase.Amount) {
				return decimal.Zero, fmt.Errorf("purchase %d: %w", purchase.ID, ErrRefundExceedsPurchase)
			}
			net = net.Sub(refund.Amount)
		}

		delta = delta.Add(net)
	}
	return delta, nil
}
