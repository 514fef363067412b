package sellerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/markethub/sellerpay/internal/domain"
	"github.com/markethub/sellerpay/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, sellerID int) (*domain.Seller, error) {
	query := `
        SELECT id, balance, created_at
        FROM sellers
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, sellerID)

	var seller domain.Seller
	err := row.Scan(&seller.ID, &seller.Balance, &seller.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find seller", zap.Error(err))
		return nil, err
	}
	return &seller, nil
}

func (r *Repository) FindSchedule(ctx context.Context, sellerID int) (*domain.PayoutSchedule, error) {
	query := `
        SELECT id, seller_id, buffer_days, payout_day
        FROM payout_schedules
        WHERE seller_id = $1
    `
	row := r.db.QueryRow(ctx, query, sellerID)

	var schedule domain.PayoutSchedule
	err := row.Scan(&schedule.ID, &schedule.SellerID, &schedule.BufferDays, &schedule.PayoutDay)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payout schedule", zap.Error(err))
		return nil, err
	}
	return &schedule, nil
}

// AddToBalance credits delta to the seller balance in place. The increment
// happens in SQL so concurrent runs for different sellers never read a
// stale balance.
func (r *Repository) AddToBalance(ctx context.Context, sellerID int, delta decimal.Decimal) (*domain.Seller, error) {
	query := `
		UPDATE sellers
		SET balance = balance + $1
		WHERE id = $2
		RETURNING id, balance, created_at
	`
	var seller domain.Seller
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, delta, sellerID)
		err := row.Scan(&seller.ID, &seller.Balance, &seller.CreatedAt)
		if err != nil {
			zap.L().Error("failed to update seller balance", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// FindDueSellers lists sellers whose schedule names the given weekday.
func (r *Repository) FindDueSellers(ctx context.Context, payoutDay string, limit uint32) ([]int, error) {
	query := `
        SELECT s.id
        FROM sellers s
        JOIN payout_schedules ps ON ps.seller_id = s.id
        WHERE ps.payout_day = $1
        ORDER BY s.id ASC
		LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, payoutDay, int(limit))
	if err != nil {
		zap.L().Error("can't get due sellers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sellerIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan due seller row", zap.Error(err))
			return nil, err
		}
		sellerIDs = append(sellerIDs, id)
	}
	return sellerIDs, nil
}
