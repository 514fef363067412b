package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutResultDTO struct {
	SettledCount int             `json:"settled_count" example:"3"`
	AmountPaid   decimal.Decimal `json:"amount_paid" swaggertype:"string" example:"70.5"`
}

type GetPayoutsResponseDTO struct {
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"70.5"`
	SettledCount int             `json:"settled_count" example:"3"`
	RunDate      string          `json:"run_date" example:"2024-11-15"`
	CreatedAt    time.Time       `json:"created_at" example:"2024-11-15T16:09:57+03:00"`
}
