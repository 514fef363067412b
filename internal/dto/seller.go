package dto

import "github.com/shopspring/decimal"

type SellerBalanceResponseDTO struct {
	SellerID int             `json:"seller_id" example:"1"`
	Balance  decimal.Decimal `json:"balance" swaggertype:"string" example:"70.5"`
}
