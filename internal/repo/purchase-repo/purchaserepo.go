package purchaserepo

import (
	"context"
	"time"

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

// FindEligible selects the purchases payable to the seller as of the cutoff
// date: unsettled, cleared upstream processing, and dated on or before the
// cutoff. Rows are locked until the surrounding transaction commits, so a
// concurrent run for the same seller selects a disjoint set.
func (r *Repository) FindEligible(ctx context.Context, sellerID int, cutoff time.Time) ([]domain.Purchase, error) {
	query := `
        SELECT p.id, p.product_id, p.customer_id, p.amount, p.purchase_date, p.processed, p.paid_to_seller
        FROM purchases p
        JOIN products pr ON pr.id = p.product_id
        WHERE pr.seller_id = $1
          AND p.paid_to_seller = FALSE
          AND p.processed = TRUE
          AND p.purchase_date <= $2
        ORDER BY p.id ASC
        FOR UPDATE OF p
    `
	rows, err := r.db.Query(ctx, query, sellerID, cutoff)
	if err != nil {
		zap.L().Error("can't get eligible purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var purchase domain.Purchase
		err := rows.Scan(
			&purchase.ID,
			&purchase.ProductID,
			&purchase.CustomerID,
			&purchase.Amount,
			&purchase.PurchaseDate,
			&purchase.Processed,
			&purchase.PaidToSeller,
		)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}

// FindRefunds returns the refunds recorded against the given purchases,
// keyed by purchase id. A purchase has at most one refund.
func (r *Repository) FindRefunds(ctx context.Context, purchaseIDs []int) (map[int]domain.Refund, error) {
	query := `
        SELECT id, purchase_id, amount, processed
        FROM refunds
        WHERE purchase_id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, purchaseIDs)
	if err != nil {
		zap.L().Error("can't get refunds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	refunds := make(map[int]domain.Refund)
	for rows.Next() {
		var refund domain.Refund
		err := rows.Scan(&refund.ID, &refund.PurchaseID, &refund.Amount, &refund.Processed)
		if err != nil {
			zap.L().Error("can't scan refund row", zap.Error(err))
			return nil, err
		}
		refunds[refund.PurchaseID] = refund
	}
	return refunds, nil
}

// MarkPaidToSeller flips paid_to_seller for the given purchases. The flag is
// one-way: rows already settled are skipped, never rewritten.
func (r *Repository) MarkPaidToSeller(ctx context.Context, purchaseIDs []int) (int64, error) {
	query := `
		UPDATE purchases
		SET paid_to_seller = TRUE
		WHERE id = ANY($1) AND paid_to_seller = FALSE
	`
	var affected int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, purchaseIDs)
		if err != nil {
			zap.L().Error("failed to mark purchases paid", zap.Error(err))
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
