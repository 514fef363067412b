package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/markethub/sellerpay/internal/domain"
	"github.com/markethub/sellerpay/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

const findEligibleQuery = `SELECT p.id, p.product_id, p.customer_id, p.amount, p.purchase_date, p.processed, p.paid_to_seller FROM purchases p JOIN products pr ON pr.id = p.product_id WHERE pr.seller_id = $1 AND p.paid_to_seller = FALSE AND p.processed = TRUE AND p.purchase_date <= $2 ORDER BY p.id ASC FOR UPDATE OF p`

func TestRepository_FindEligible(t *testing.T) {
	repo, mock, _ := NewMock(t)
	cutoff := time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		sellerID  int
		mockSetup func()
		expectErr bool
		result    []domain.Purchase
	}{
		{
			name:     "Returns eligible purchases in id order",
			sellerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "product_id", "customer_id", "amount", "purchase_date", "processed", "paid_to_seller"}).
					AddRow(1, 1, 1, decimal.RequireFromString("20.1"), cutoff.AddDate(0, 0, -7), true, false).
					AddRow(4, 3, 1, decimal.RequireFromString("50.4"), cutoff.AddDate(0, 0, -1), true, false)
				mock.ExpectQuery(regexp.QuoteMeta(findEligibleQuery)).
					WithArgs(1, cutoff).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Purchase{
				{ID: 1, ProductID: 1, CustomerID: 1, Amount: decimal.RequireFromString("20.1"), PurchaseDate: cutoff.AddDate(0, 0, -7), Processed: true, PaidToSeller: false},
				{ID: 4, ProductID: 3, CustomerID: 1, Amount: decimal.RequireFromString("50.4"), PurchaseDate: cutoff.AddDate(0, 0, -1), Processed: true, PaidToSeller: false},
			},
		},
		{
			name:     "No eligible purchases",
			sellerID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findEligibleQuery)).
					WithArgs(2, cutoff).
					WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "customer_id", "amount", "purchase_date", "processed", "paid_to_seller"}))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			sellerID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findEligibleQuery)).
					WithArgs(1, cutoff).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindEligible(context.Background(), tt.sellerID, cutoff)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindRefunds(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name        string
		purchaseIDs []int
		mockSetup   func()
		expectErr   bool
		result      map[int]domain.Refund
	}{
		{
			name:        "Returns refunds keyed by purchase id",
			purchaseIDs: []int{1, 3, 4},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "purchase_id", "amount", "processed"}).
					AddRow(1, 3, decimal.RequireFromString("45.4"), true)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, purchase_id, amount, processed FROM refunds WHERE purchase_id = ANY($1)`)).
					WithArgs([]int{1, 3, 4}).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: map[int]domain.Refund{
				3: {ID: 1, PurchaseID: 3, Amount: decimal.RequireFromString("45.4"), Processed: true},
			},
		},
		{
			name:        "No refunds",
			purchaseIDs: []int{1},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, purchase_id, amount, processed FROM refunds WHERE purchase_id = ANY($1)`)).
					WithArgs([]int{1}).
					WillReturnRows(pgxmock.NewRows([]string{"id", "purchase_id", "amount", "processed"}))
			},
			expectErr: false,
			result:    map[int]domain.Refund{},
		},
		{
			name:        "Database error",
			purchaseIDs: []int{1},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, purchase_id, amount, processed FROM refunds WHERE purchase_id = ANY($1)`)).
					WithArgs([]int{1}).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindRefunds(context.Background(), tt.purchaseIDs)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_MarkPaidToSeller(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name        string
		purchaseIDs []int
		mockSetup   func()
		expectErr   bool
		affected    int64
	}{
		{
			name:        "Flips the flag for unsettled purchases only",
			purchaseIDs: []int{1, 3, 4},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE purchases
						SET paid_to_seller = TRUE
						WHERE id = ANY($1) AND paid_to_seller = FALSE`)).
						WithArgs([]int{1, 3, 4}).
						WillReturnResult(pgxmock.NewResult("UPDATE", 3))
					return fn(ctx)
				})
			},
			expectErr: false,
			affected:  3,
		},
		{
			name:        "Database error",
			purchaseIDs: []int{1},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`
						UPDATE purchases
						SET paid_to_seller = TRUE
						WHERE id = ANY($1) AND paid_to_seller = FALSE`)).
						WithArgs([]int{1}).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
			affected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			affected, err := repo.MarkPaidToSeller(context.Background(), tt.purchaseIDs)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.affected, affected)
		})
	}
}
