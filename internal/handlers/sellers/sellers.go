package sellers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/markethub/sellerpay/internal/domain"
	"github.com/markethub/sellerpay/internal/dto"
	"github.com/markethub/sellerpay/internal/service/sellerservice"
	"github.com/markethub/sellerpay/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, sellerID int) (*domain.Seller, error)
	GetPayouts(ctx context.Context, sellerID int) ([]domain.Payout, error)
}

type SellerHandler struct {
	sellerService Service
}

func New(sellerService Service) *SellerHandler {
	return &SellerHandler{
		sellerService: sellerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get seller balance
//	@Description	Retrieve the running balance accumulated by settled purchases for the seller.
//	@Tags			Sellers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			sellerID	path		int	true	"Seller ID"
//	@Success		200			{object}	dto.SellerBalanceResponseDTO	"Current balance"
//	@Failure		400			{object}	utils.Response					"Invalid seller id"
//	@Failure		401			{object}	utils.Response					"Caller not authorized"
//	@Failure		404			{object}	utils.Response					"Seller not found"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/sellers/{sellerID}/balance [get]
func (h *SellerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	sellerID, err := strconv.Atoi(chi.URLParam(r, "sellerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid seller id")
		return
	}

	seller, err := h.sellerService.GetBalance(r.Context(), sellerID)
	if err != nil {
		switch {
		case errors.Is(err, sellerservice.ErrSellerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SellerBalanceResponseDTO{
		SellerID: seller.ID,
		Balance:  seller.Balance,
	})
}

// GetPayouts godoc
//
//	@Summary		Get payouts history
//	@Description	Get the history of payout runs for the seller, newest first.
//	@Tags			Sellers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetPayoutsResponseDTO	"Payouts history"
//	@Success		204	{object}	utils.Response				"Payouts not found"
//	@Failure		400	{object}	utils.Response				"Invalid seller id"
//	@Failure		401	{object}	utils.Response				"Caller not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/sellers/{sellerID}/payouts [get]
func (h *SellerHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	sellerID, err := strconv.Atoi(chi.URLParam(r, "sellerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid seller id")
		return
	}

	payouts, err := h.sellerService.GetPayouts(r.Context(), sellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payouts")
		return
	}

	if len(payouts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payouts not found")
		return
	}

	response := make([]dto.GetPayoutsResponseDTO, len(payouts))
	for i, p := range payouts {
		response[i] = dto.GetPayoutsResponseDTO{
			Amount:       p.Amount,
			SettledCount: p.SettledCount,
			RunDate:      p.RunDate.Format("2006-01-02"),
			CreatedAt:    p.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
