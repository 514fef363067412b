package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Seller struct {
	ID        int             `db:"id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

type PayoutSchedule struct {
	ID         int    `db:"id"`
	SellerID   int    `db:"seller_id"`
	BufferDays int    `db:"buffer_days"`
	PayoutDay  string `db:"payout_day"`
}

type Customer struct {
	ID        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type Product struct {
	ID       int             `db:"id"`
	SellerID int             `db:"seller_id"`
	Price    decimal.Decimal `db:"price"`
}

type Purchase struct {
	ID           int             `db:"id"`
	ProductID    int             `db:"product_id"`
	CustomerID   int             `db:"customer_id"`
	Amount       decimal.Decimal `db:"amount"`
	PurchaseDate time.Time       `db:"purchase_date"`
	Processed    bool            `db:"processed"`
	PaidToSeller bool            `db:"paid_to_seller"`
}

type Refund struct {
	ID         int             `db:"id"`
	PurchaseID int             `db:"purchase_id"`
	Amount     decimal.Decimal `db:"amount"`
	Processed  bool            `db:"processed"`
}

type Payout struct {
	ID           int             `db:"id"`
	SellerID     int             `db:"seller_id"`
	Amount       decimal.Decimal `db:"amount"`
	SettledCount int             `db:"settled_count"`
	RunDate      time.Time       `db:"run_date"`
	CreatedAt    time.Time       `db:"created_at"`
}
