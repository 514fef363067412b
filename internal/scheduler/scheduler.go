package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/markethub/sellerpay/internal/config"
	"github.com/markethub/sellerpay/internal/service/payoutservice"
)

var runningSellers sync.Map

type PayoutRunner interface {
	RunPayout(ctx context.Context, sellerID int, asOf time.Time) (*payoutservice.Result, error)
}

// Service drives the payout-day gating: each tick it finds sellers whose
// schedule names the current weekday and runs payouts for them. A seller
// whose run is still in flight is skipped, and each run is an independent
// unit of work, so no coordination happens across sellers.
type Service struct {
	sellerRepo payoutservice.SellerRepo
	payouts    PayoutRunner
	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration
	now        func() time.Time
}

func New(cfg *config.Config, sellerRepo payoutservice.SellerRepo, payouts PayoutRunner) *Service {
	return &Service{
		sellerRepo: sellerRepo,
		payouts:    payouts,
		limit:      1000,
		workerPool: NewWorkerPool(10),
		interval:   cfg.PayoutInterval,
		now:        time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout scheduler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping scheduler")
			return
		case <-ticker.C:
			s.processDueSellers(ctx)
		}
	}
}

func (s *Service) processDueSellers(ctx context.Context) {
	today := s.now()
	payoutDay := today.Weekday().String()

	sellerIDs, err := s.sellerRepo.FindDueSellers(ctx, payoutDay, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch due sellers", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, sellerID := range sellerIDs {
		sellerID := sellerID

		if _, loaded := runningSellers.LoadOrStore(sellerID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer runningSellers.Delete(sellerID)
				return s.handleSeller(ctx, sellerID, today)
			})
			if err != nil {
				runningSellers.Delete(sellerID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching payout runs", zap.Error(err))
	}
}

func (s *Service) handleSeller(ctx context.Context, sellerID int, asOf time.Time) error {
	result, err := s.payouts.RunPayout(ctx, sellerID, asOf)
	if err != nil {
		// The next tick re-selects the still-unsettled purchases, so a
		// failed run needs no retry bookkeeping here.
		return fmt.Errorf("payout run for seller %d failed: %w", sellerID, err)
	}

	if result.SettledCount == 0 {
		zap.L().Debug("Nothing to settle", zap.Int("sellerID", sellerID))
		return nil
	}

	zap.L().Info("Scheduled payout settled",
		zap.Int("sellerID", sellerID),
		zap.Int("settled", result.SettledCount),
		zap.String("amount", result.AmountPaid.String()),
	)
	return nil
}
