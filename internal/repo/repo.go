package repo

import (
	"github.com/markethub/sellerpay/internal/pg"
	payoutrepo "github.com/markethub/sellerpay/internal/repo/payout-repo"
	purchaserepo "github.com/markethub/sellerpay/internal/repo/purchase-repo"
	sellerrepo "github.com/markethub/sellerpay/internal/repo/seller-repo"
	"github.com/markethub/sellerpay/internal/service/payoutservice"
)

type Repositories struct {
	TXManager    pg.TXManager
	SellerRepo   payoutservice.SellerRepo
	PurchaseRepo payoutservice.PurchaseRepo
	PayoutRepo   payoutservice.PayoutRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	sellerRepo := sellerrepo.New(conn, txManager)
	purchaseRepo := purchaserepo.New(conn, txManager)
	payoutRepo := payoutrepo.New(conn)

	return &Repositories{
		TXManager:    txManager,
		SellerRepo:   sellerRepo,
		PurchaseRepo: purchaseRepo,
		PayoutRepo:   payoutRepo,
	}
}
