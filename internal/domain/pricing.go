package domain

import "github.com/shopspring/decimal"

// Category groups variants. It carries no price of its own, only a default
// security deposit that variants may override.
type Category struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
}

// PackageVariant is the priced node of the chain. A booking line resolves
// to exactly one variant.
type PackageVariant struct {
	ID                 string          `json:"id"`
	CategoryID         string          `json:"category_id"`
	Name               string          `json:"name"`
	BasePrice          decimal.Decimal `json:"base_price"`
	ExtraUnitPrice     decimal.Decimal `json:"extra_unit_price"`
	MissingUnitPenalty decimal.Decimal `json:"missing_unit_penalty"`
	SecurityDeposit    decimal.Decimal `json:"security_deposit"`
	Inclusions         []string        `json:"inclusions,omitempty"`
	IsActive           bool            `json:"is_active"`
	DisplayOrder       int             `json:"display_order"`
}

// VariantLevel is an optional upgrade on top of a variant.
type VariantLevel struct {
	ID              string          `json:"id"`
	VariantID       string          `json:"variant_id"`
	Name            string          `json:"name"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
}

// DistanceTier is a priced band of delivery distance. Tiers for a setup are
// non-overlapping and ordered by MinKm; both bounds are inclusive.
type DistanceTier struct {
	ID              string          `json:"id"`
	MinKm           float64         `json:"min_km"`
	MaxKm           float64         `json:"max_km"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
	IsActive        bool            `json:"is_active"`
}

type DiscountType string

const (
	DiscountTypeFlat       DiscountType = "flat"
	DiscountTypePercentage DiscountType = "percentage"
)
