package service

import (
	"github.com/markethub/sellerpay/internal/config"
	"github.com/markethub/sellerpay/internal/handlers/payouts"
	"github.com/markethub/sellerpay/internal/handlers/sellers"
	"github.com/markethub/sellerpay/internal/repo"
	"github.com/markethub/sellerpay/internal/service/payoutservice"
	"github.com/markethub/sellerpay/internal/service/sellerservice"
)

type Services struct {
	PayoutService payouts.Service
	SellerService sellers.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	payoutService := payoutservice.New(repo.SellerRepo, repo.PurchaseRepo, repo.PayoutRepo, repo.TXManager, cfg.RequireProcessedRefunds)
	sellerService := sellerservice.New(repo.SellerRepo, repo.PayoutRepo)

	return &Services{
		PayoutService: payoutService,
		SellerService: sellerService,
	}
}
