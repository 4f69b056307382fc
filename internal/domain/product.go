package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock holds the per-bucket unit counts for a product. All counts are
// non-negative; computed decrements are floored at zero. The target
// invariant is available + booked + damaged + in_laundry <= total.
type Stock struct {
	Total     int `json:"stock_total"`
	Available int `json:"stock_available"`
	Booked    int `json:"stock_booked"`
	Damaged   int `json:"stock_damaged"`
	InLaundry int `json:"stock_in_laundry"`
}

type Product struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	CategoryID      string          `json:"category_id"`
	Stock           Stock           `json:"stock"`
	ReorderLevel    int             `json:"reorder_level"`
	DamageFee       decimal.Decimal `json:"damage_fee"`
	LostFee         decimal.Decimal `json:"lost_fee"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	IsActive        bool            `json:"is_active"`
	CreatedOn       time.Time       `json:"created_on"`
	UpdatedOn       time.Time       `json:"updated_on"`
}
