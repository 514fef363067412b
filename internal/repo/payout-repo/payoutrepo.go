package payoutrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/markethub/sellerpay/internal/domain"
	"github.com/markethub/sellerpay/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreatePayout(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
		INSERT INTO payouts (seller_id, amount, settled_count, run_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, payout.SellerID, payout.Amount, payout.SettledCount, payout.RunDate).
		Scan(&payout.ID, &payout.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) FindPayoutsBySellerID(ctx context.Context, sellerID int) ([]domain.Payout, error) {
	query := `
        SELECT id, seller_id, amount, settled_count, run_date, created_at
        FROM payouts
        WHERE seller_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var payout domain.Payout
		err := rows.Scan(&payout.ID, &payout.SellerID, &payout.Amount, &payout.SettledCount, &payout.RunDate, &payout.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, payout)
	}

	return payouts, nil
}
