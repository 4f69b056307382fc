package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/engine"
	"safawala-crm-backend/internal/repository"
)

type pricingService struct {
	pricingRepo repository.PricingRepository
	gstPercent  decimal.Decimal
}

func NewPricingService(pricingRepo repository.PricingRepository, gstPercent decimal.Decimal) PricingService {
	return &pricingService{
		pricingRepo: pricingRepo,
		gstPercent:  gstPercent,
	}
}

func (s *pricingService) QuoteLine(ctx context.Context, req LineRequest) (*LineQuote, error) {
	variant, err := s.pricingRepo.GetVariant(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}
	if !variant.IsActive {
		return nil, fmt.Errorf("%w: variant %s is inactive", engine.ErrValidation, variant.ID)
	}

	var level *domain.VariantLevel
	if req.LevelID != "" {
		level, err = s.pricingRepo.GetLevel(ctx, req.LevelID)
		if err != nil {
			return nil, err
		}
		if level.VariantID != variant.ID {
			return nil, fmt.Errorf("%w: level %s does not belong to variant %s", engine.ErrValidation, level.ID, variant.ID)
		}
	}

	var tier *domain.DistanceTier
	if req.DistanceKm > 0 {
		tiers, err := s.pricingRepo.ListDistanceTiers(ctx)
		if err != nil {
			return nil, err
		}
		tier, err = engine.SelectDistanceTier(tiers, req.DistanceKm)
		if err != nil {
			return nil, err
		}
	}

	breakdown, err := engine.ComposeUnitPrice(*variant, level, tier, req.ExtraUnits, req.MissingUnits, req.Quantity)
	if err != nil {
		return nil, err
	}

	quote := &LineQuote{
		VariantID:   variant.ID,
		VariantName: variant.Name,
		Breakdown:   breakdown,
		Deposit:     variant.SecurityDeposit,
	}
	if level != nil {
		quote.LevelName = level.Name
	}
	if quote.Deposit.IsZero() {
		category, err := s.pricingRepo.GetCategory(ctx, variant.CategoryID)
		if err != nil {
			return nil, err
		}
		quote.Deposit = category.SecurityDeposit
	}
	return quote, nil
}

func (s *pricingService) QuoteOrder(ctx context.Context, req TotalsRequest) (*OrderQuote, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: order has no lines", engine.ErrValidation)
	}

	lines := make([]LineQuote, 0, len(req.Lines))
	lineTotals := make([]decimal.Decimal, 0, len(req.Lines))
	deposit := decimal.Zero
	for _, lr := range req.Lines {
		lq, err := s.QuoteLine(ctx, lr)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *lq)
		lineTotals = append(lineTotals, lq.Breakdown.LineTotal)
		deposit = deposit.Add(lq.Deposit)
	}

	discountValue, err := parseAmount(req.DiscountValue)
	if err != nil {
		return nil, err
	}
	couponDiscount, err := parseAmount(req.CouponDiscount)
	if err != nil {
		return nil, err
	}
	amountPaid, err := parseAmount(req.AmountPaid)
	if err != nil {
		return nil, err
	}

	totals, err := engine.ComputeOrderTotals(engine.TotalsInput{
		LineTotals:      lineTotals,
		DiscountType:    req.DiscountType,
		DiscountValue:   discountValue,
		CouponDiscount:  couponDiscount,
		GSTPercent:      s.gstPercent,
		SecurityDeposit: deposit,
		AmountPaid:      amountPaid,
	})
	if err != nil {
		return nil, err
	}
	return &OrderQuote{Lines: lines, Totals: totals}, nil
}

// parseAmount reads a decimal string from a request; empty means zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid amount %q", engine.ErrValidation, s)
	}
	return d, nil
}
