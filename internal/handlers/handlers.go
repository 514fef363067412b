package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/markethub/sellerpay/docs"
	payouthandlers "github.com/markethub/sellerpay/internal/handlers/payouts"
	sellerhandlers "github.com/markethub/sellerpay/internal/handlers/sellers"
	"github.com/markethub/sellerpay/internal/service"
	"github.com/markethub/sellerpay/pkg/auth"
)

type PayoutHandler interface {
	RunPayout(w http.ResponseWriter, r *http.Request)
}

type SellerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetPayouts(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PayoutHandler PayoutHandler
	SellerHandler SellerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		PayoutHandler: payouthandlers.New(s.PayoutService),
		SellerHandler: sellerhandlers.New(s.SellerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/payouts", func(r chi.Router) {
			r.Post("/{sellerID}/run", h.PayoutHandler.RunPayout)
		})
		r.Route("/sellers/{sellerID}", func(r chi.Router) {
			r.Get("/balance", h.SellerHandler.GetBalance)
			r.Get("/payouts", h.SellerHandler.GetPayouts)
		})
	})

	return r
}
