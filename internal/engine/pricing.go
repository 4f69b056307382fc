package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"safawala-crm-backend/internal/domain"
)

// LineBreakdown itemizes how a line's unit price and total were composed.
// Composition is pure: identical inputs always produce identical output.
type LineBreakdown struct {
	BasePrice        decimal.Decimal `json:"base_price"`
	LevelAddition    decimal.Decimal `json:"level_addition"`
	DistanceAddition decimal.Decimal `json:"distance_addition"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         int             `json:"quantity"`
	ExtraUnits       int             `json:"extra_units"`
	ExtraCharge      decimal.Decimal `json:"extra_charge"`
	MissingUnits     int             `json:"missing_units"`
	MissingPenalty   decimal.Decimal `json:"missing_penalty"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

// SelectDistanceTier picks the tier covering km. Both bounds are inclusive:
// a distance exactly at max_km still matches that tier. Zero or negative km
// means no travel and selects no tier. A positive distance beyond every
// configured tier is ErrNoPricingTier, never a silent zero addition.
func SelectDistanceTier(tiers []domain.DistanceTier, km float64) (*domain.DistanceTier, error) {
	if km <= 0 {
		return nil, nil
	}
	for i := range tiers {
		t := &tiers[i]
		if !t.IsActive {
			continue
		}
		if km >= t.MinKm && km <= t.MaxKm {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %.1f km", ErrNoPricingTier, km)
}

// ComposeUnitPrice walks the variant -> level -> distance tier chain and
// applies per-line extra/missing unit adjustments.
//
// The unit price is purely additive; optional terms contribute zero:
//
//	unit_price = variant.base_price + level.additional_price + tier.additional_price
//
// Extra and missing units adjust the line total, not the unit price. The
// missing-unit penalty is subtractive everywhere in this engine: it reduces
// the line total (and thereby every downstream total).
func ComposeUnitPrice(variant domain.PackageVariant, level *domain.VariantLevel, tier *domain.DistanceTier, extraUnits, missingUnits, quantity int) (LineBreakdown, error) {
	if quantity <= 0 {
		return LineBreakdown{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrValidation, quantity)
	}
	if extraUnits < 0 || missingUnits < 0 {
		return LineBreakdown{}, fmt.Errorf("%w: extra_units and missing_units must be non-negative", ErrValidation)
	}
	if variant.BasePrice.IsNegative() {
		return LineBreakdown{}, fmt.Errorf("%w: variant %s has negative base price", ErrValidation, variant.ID)
	}

	b := LineBreakdown{
		BasePrice:    variant.BasePrice,
		Quantity:     quantity,
		ExtraUnits:   extraUnits,
		MissingUnits: missingUnits,
	}
	if level != nil {
		b.LevelAddition = level.AdditionalPrice
	}
	if tier != nil {
		b.DistanceAddition = tier.AdditionalPrice
	}
	b.UnitPrice = b.BasePrice.Add(b.LevelAddition).Add(b.DistanceAddition)
	b.ExtraCharge = variant.ExtraUnitPrice.Mul(decimal.NewFromInt(int64(extraUnits)))
	b.MissingPenalty = variant.MissingUnitPenalty.Mul(decimal.NewFromInt(int64(missingUnits)))
	b.LineTotal = b.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Add(b.ExtraCharge).Sub(b.MissingPenalty)
	return b, nil
}
