package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/markethub/sellerpay/internal/config"
	"github.com/markethub/sellerpay/internal/service/payoutservice"
)

func NewMock(t *testing.T) (*Service, *payoutservice.MockSellerRepo, *MockPayoutRunner) {
	cfg := &config.Config{PayoutInterval: time.Hour}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellerRepo := payoutservice.NewMockSellerRepo(ctrl)
	payouts := NewMockPayoutRunner(ctrl)
	service := New(cfg, sellerRepo, payouts)
	return service, sellerRepo, payouts
}

func clearRunningSellers() {
	runningSellers.Range(func(key, _ any) bool {
		runningSellers.Delete(key)
		return true
	})
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processDueSellers(t *testing.T) {
	friday := time.Date(2024, 11, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		mockFindSellers func(ctx context.Context, payoutDay string, limit uint32) ([]int, error)
		mockAddTask     func(ctx context.Context, task Task) error
		sellerCount     int
	}{
		{
			name: "dispatches due sellers",
			mockFindSellers: func(ctx context.Context, payoutDay string, limit uint32) ([]int, error) {
				assert.Equal(t, "Friday", payoutDay)
				return []int{1, 2}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			sellerCount: 2,
		},
		{
			name: "fails when fetching due sellers",
			mockFindSellers: func(ctx context.Context, payoutDay string, limit uint32) ([]int, error) {
				return nil, fmt.Errorf("failed to fetch due sellers")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			sellerCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindSellers: func(ctx context.Context, payoutDay string, limit uint32) ([]int, error) {
				return []int{3}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			sellerCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			defer clearRunningSellers()

			sellerRepo := payoutservice.NewMockSellerRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			sellerRepo.EXPECT().
				FindDueSellers(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindSellers).
				Times(1)
			workerPool.EXPECT().
				AddTask(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockAddTask).
				Times(tt.sellerCount)

			service := &Service{
				sellerRepo: sellerRepo,
				workerPool: workerPool,
				limit:      10,
				now:        func() time.Time { return friday },
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.processDueSellers(ctx)
		})
	}
}

func TestService_processDueSellers_SkipsInFlightSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	defer clearRunningSellers()

	sellerRepo := payoutservice.NewMockSellerRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	runningSellers.Store(1, struct{}{})

	sellerRepo.EXPECT().
		FindDueSellers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]int{1, 2}, nil).
		Times(1)
	workerPool.EXPECT().
		AddTask(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	service := &Service{
		sellerRepo: sellerRepo,
		workerPool: workerPool,
		limit:      10,
		now:        time.Now,
	}

	service.processDueSellers(context.Background())
}

func TestService_handleSeller(t *testing.T) {
	asOf := time.Date(2024, 11, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		sellerID    int
		result      *payoutservice.Result
		runErr      error
		expectedErr string
	}{
		{
			name:     "settles eligible purchases",
			sellerID: 1,
			result: &payoutservice.Result{
				SettledCount: 3,
				AmountPaid:   decimal.RequireFromString("70.5"),
			},
		},
		{
			name:     "nothing to settle",
			sellerID: 2,
			result: &payoutservice.Result{
				SettledCount: 0,
				AmountPaid:   decimal.Zero,
			},
		},
		{
			name:        "payout run fails",
			sellerID:    3,
			runErr:      errors.New("database error"),
			expectedErr: "payout run for seller 3 failed: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, payouts := NewMock(t)

			payouts.EXPECT().
				RunPayout(gomock.Any(), tt.sellerID, asOf).
				Return(tt.result, tt.runErr).
				Times(1)

			err := service.handleSeller(context.Background(), tt.sellerID, asOf)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
