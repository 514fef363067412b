package payouts

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/markethub/sellerpay/internal/dto"
	"github.com/markethub/sellerpay/internal/service/payoutservice"
	"github.com/markethub/sellerpay/pkg/utils"
)

type Service interface {
	RunPayout(ctx context.Context, sellerID int, asOf time.Time) (*payoutservice.Result, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

const dateLayout = "2006-01-02"

// RunPayout godoc
//
//	@Summary		Run a payout for a seller
//	@Description	Settle every purchase of the seller that has cleared its buffer period as of the given date, crediting the net amount (purchase amounts minus refunds) to the seller balance. Invoked by the external scheduler once per seller per payout day.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			sellerID	path		int		true	"Seller ID"
//	@Param			date		query		string	false	"Run date (YYYY-MM-DD), defaults to today"
//	@Success		200			{object}	dto.PayoutResultDTO	"Settled count and amount paid"
//	@Failure		400			{object}	utils.Response		"Invalid seller id or date"
//	@Failure		401			{object}	utils.Response		"Caller not authorized"
//	@Failure		404			{object}	utils.Response		"Seller not found"
//	@Failure		409			{object}	utils.Response		"Seller has no payout schedule"
//	@Failure		500			{object}	utils.Response		"Internal server error"
//	@Router			/api/payouts/{sellerID}/run [post]
func (h *PayoutHandler) RunPayout(w http.ResponseWriter, r *http.Request) {
	sellerID, err := strconv.Atoi(chi.URLParam(r, "sellerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid seller id")
		return
	}

	asOf := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		asOf, err = time.Parse(dateLayout, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
	}

	result, err := h.payoutService.RunPayout(r.Context(), sellerID, asOf)
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrSellerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, payoutservice.ErrNoSchedule):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PayoutResultDTO{
		SettledCount: result.SettledCount,
		AmountPaid:   result.AmountPaid,
	})
}
