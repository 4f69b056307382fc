package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"safawala-crm-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// TotalsInput carries everything the order total calculation consumes.
type TotalsInput struct {
	LineTotals      []decimal.Decimal
	DistanceAddon   decimal.Decimal
	DiscountType    domain.DiscountType
	DiscountValue   decimal.Decimal
	CouponDiscount  decimal.Decimal
	GSTPercent      decimal.Decimal
	SecurityDeposit decimal.Decimal
	LostDamaged     []domain.LostDamagedEntry
	AmountPaid      decimal.Decimal
}

// ComputeOrderTotals aggregates line items and order-level adjustments in a
// fixed stage order; each stage consumes the previous stage's output and the
// order must not change:
//
//	subtotal -> discount -> coupon -> tax -> lost/damaged -> grand -> pending
//
// Arithmetic between stages is exact; each output field is rounded half-up
// to 2 decimal places only at the end. PendingAmount is deliberately not
// clamped: a negative value is an overpayment the caller must surface.
func ComputeOrderTotals(in TotalsInput) (domain.OrderTotals, error) {
	if err := in.validate(); err != nil {
		return domain.OrderTotals{}, err
	}

	subtotal := in.DistanceAddon
	for _, lt := range in.LineTotals {
		subtotal = subtotal.Add(lt)
	}
	if subtotal.IsNegative() {
		return domain.OrderTotals{}, fmt.Errorf("%w: subtotal is negative (%s)", ErrValidation, subtotal)
	}

	var discount decimal.Decimal
	switch in.DiscountType {
	case domain.DiscountTypePercentage:
		discount = subtotal.Mul(in.DiscountValue).Div(hundred)
	case domain.DiscountTypeFlat, "":
		discount = decimal.Min(in.DiscountValue, subtotal)
	default:
		return domain.OrderTotals{}, fmt.Errorf("%w: unknown discount type %q", ErrValidation, in.DiscountType)
	}
	afterDiscount := subtotal.Sub(discount)

	coupon := decimal.Min(in.CouponDiscount, afterDiscount)
	afterCoupon := afterDiscount.Sub(coupon)

	tax := afterCoupon.Mul(in.GSTPercent).Div(hundred)

	lostDamaged := decimal.Zero
	for _, e := range in.LostDamaged {
		lostDamaged = lostDamaged.Add(e.TotalCharge)
	}

	grand := afterCoupon.Add(tax).Add(in.SecurityDeposit).Add(lostDamaged)
	pending := grand.Sub(in.AmountPaid)

	return domain.OrderTotals{
		Subtotal:         round(subtotal),
		DiscountAmount:   round(discount),
		CouponDiscount:   round(coupon),
		TaxAmount:        round(tax),
		SecurityDeposit:  round(in.SecurityDeposit),
		LostDamagedTotal: round(lostDamaged),
		GrandTotal:       round(grand),
		AmountPaid:       round(in.AmountPaid),
		PendingAmount:    round(pending),
	}, nil
}

// ComputeSettlement closes a refundable deposit against lost/damaged
// deductions. Exactly one of refund_due / extra_payable can be positive.
func ComputeSettlement(bookingID string, deposit decimal.Decimal, entries []domain.LostDamagedEntry) (domain.Settlement, error) {
	if deposit.IsNegative() {
		return domain.Settlement{}, fmt.Errorf("%w: deposit is negative (%s)", ErrValidation, deposit)
	}
	deductions := decimal.Zero
	for _, e := range entries {
		if e.Quantity < 0 || e.ChargePerUnit.IsNegative() {
			return domain.Settlement{}, fmt.Errorf("%w: lost/damaged entry %s has negative quantity or charge", ErrValidation, e.ID)
		}
		deductions = deductions.Add(e.TotalCharge)
	}
	refund := decimal.Max(decimal.Zero, deposit.Sub(deductions))
	extra := decimal.Max(decimal.Zero, deductions.Sub(deposit))
	return domain.Settlement{
		BookingID:       bookingID,
		Deposit:         round(deposit),
		DeductionsTotal: round(deductions),
		RefundDue:       round(refund),
		ExtraPayable:    round(extra),
	}, nil
}

func (in TotalsInput) validate() error {
	if in.GSTPercent.IsNegative() || in.GSTPercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: gst_percentage %s outside [0,100]", ErrValidation, in.GSTPercent)
	}
	if in.DiscountValue.IsNegative() {
		return fmt.Errorf("%w: discount value is negative", ErrValidation)
	}
	if in.CouponDiscount.IsNegative() {
		return fmt.Errorf("%w: coupon discount is negative", ErrValidation)
	}
	if in.SecurityDeposit.IsNegative() {
		return fmt.Errorf("%w: security deposit is negative", ErrValidation)
	}
	if in.AmountPaid.IsNegative() {
		return fmt.Errorf("%w: amount paid is negative", ErrValidation)
	}
	if in.DistanceAddon.IsNegative() {
		return fmt.Errorf("%w: distance addon is negative", ErrValidation)
	}
	for _, e := range in.LostDamaged {
		if e.TotalCharge.IsNegative() {
			return fmt.Errorf("%w: lost/damaged charge is negative", ErrValidation)
		}
	}
	return nil
}

// round applies the engine-wide rounding rule: half-up, 2 decimal places,
// applied once per stage output and never to intermediate values.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
