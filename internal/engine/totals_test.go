package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"safawala-crm-backend/internal/domain"
)

func TestComputeOrderTotals(t *testing.T) {
	t.Run("Reference order", func(t *testing.T) {
		// subtotal 10000, 10% discount, coupon 500, GST 5%, deposit 2000, paid 8000
		got, err := ComputeOrderTotals(TotalsInput{
			LineTotals:      []decimal.Decimal{dec("10000")},
			DiscountType:    domain.DiscountTypePercentage,
			DiscountValue:   dec("10"),
			CouponDiscount:  dec("500"),
			GSTPercent:      dec("5"),
			SecurityDeposit: dec("2000"),
			AmountPaid:      dec("8000"),
		})
		assert.NoError(t, err)
		assert.True(t, got.Subtotal.Equal(dec("10000")), "subtotal %s", got.Subtotal)
		assert.True(t, got.DiscountAmount.Equal(dec("1000")), "discount %s", got.DiscountAmount)
		assert.True(t, got.CouponDiscount.Equal(dec("500")), "coupon %s", got.CouponDiscount)
		assert.True(t, got.TaxAmount.Equal(dec("425")), "tax %s", got.TaxAmount)
		assert.True(t, got.GrandTotal.Equal(dec("10925")), "grand %s", got.GrandTotal)
		assert.True(t, got.PendingAmount.Equal(dec("2925")), "pending %s", got.PendingAmount)
	})

	t.Run("Idempotent", func(t *testing.T) {
		in := TotalsInput{
			LineTotals:     []decimal.Decimal{dec("1234.56"), dec("789.01")},
			DistanceAddon:  dec("150"),
			DiscountType:   domain.DiscountTypeFlat,
			DiscountValue:  dec("100"),
			CouponDiscount: dec("50"),
			GSTPercent:     dec("18"),
			AmountPaid:     dec("500"),
		}
		a, err := ComputeOrderTotals(in)
		assert.NoError(t, err)
		b, err := ComputeOrderTotals(in)
		assert.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Flat discount capped at subtotal", func(t *testing.T) {
		got, err := ComputeOrderTotals(TotalsInput{
			LineTotals:    []decimal.Decimal{dec("300")},
			DiscountType:  domain.DiscountTypeFlat,
			DiscountValue: dec("1000"),
		})
		assert.NoError(t, err)
		assert.True(t, got.DiscountAmount.Equal(dec("300")))
		assert.True(t, got.GrandTotal.IsZero())
	})

	t.Run("Coupon never drives the total negative", func(t *testing.T) {
		got, err := ComputeOrderTotals(TotalsInput{
			LineTotals:     []decimal.Decimal{dec("500")},
			DiscountType:   domain.DiscountTypeFlat,
			DiscountValue:  dec("200"),
			CouponDiscount: dec("900"),
		})
		assert.NoError(t, err)
		assert.True(t, got.CouponDiscount.Equal(dec("300")))
		assert.True(t, got.GrandTotal.IsZero())
	})

	t.Run("Distance addon joins the subtotal before discounting", func(t *testing.T) {
		got, err := ComputeOrderTotals(TotalsInput{
			LineTotals:    []decimal.Decimal{dec("1000")},
			DistanceAddon: dec("500"),
			DiscountType:  domain.DiscountTypePercentage,
			DiscountValue: dec("10"),
		})
		assert.NoError(t, err)
		assert.True(t, got.Subtotal.Equal(dec("1500")))
		assert.True(t, got.DiscountAmount.Equal(dec("150")))
	})

	t.Run("Lost damaged charges land after tax", func(t *testing.T) {
		got, err := ComputeOrderTotals(TotalsInput{
			LineTotals: []decimal.Decimal{dec("1000")},
			GSTPercent: dec("10"),
			LostDamaged: []domain.LostDamagedEntry{
				{Kind: domain.LostDamagedKindDamaged, Quantity: 1, TotalCharge: dec("250")},
				{Kind: domain.LostDamagedKindLost, Quantity: 2, TotalCharge: dec("600")},
			},
		})
		assert.NoError(t, err)
		assert.True(t, got.LostDamagedTotal.Equal(dec("850")))
		// 1000 + 100 tax + 850 = 1950; lost/damaged is not taxed
		assert.True(t, got.GrandTotal.Equal(dec("1950")))
	})

	t.Run("Overpayment yields negative pending amount", func(t *testing.T) {
		got, err := ComputeOrderTotals(TotalsInput{
			LineTotals: []decimal.Decimal{dec("1000")},
			AmountPaid: dec("1500"),
		})
		assert.NoError(t, err)
		assert.True(t, got.PendingAmount.Equal(dec("-500")))
	})

	t.Run("Rounds each output to two places half up", func(t *testing.T) {
		got, err := ComputeOrderTotals(TotalsInput{
			LineTotals:    []decimal.Decimal{dec("100.555")},
			DiscountType:  domain.DiscountTypePercentage,
			DiscountValue: dec("3"),
			GSTPercent:    dec("5"),
		})
		assert.NoError(t, err)
		assert.True(t, got.Subtotal.Equal(dec("100.56")), "subtotal %s", got.Subtotal)
		// discount 3.01665 -> 3.02, tax on unrounded 97.53835*0.05 = 4.8769175 -> 4.88
		assert.True(t, got.DiscountAmount.Equal(dec("3.02")), "discount %s", got.DiscountAmount)
		assert.True(t, got.TaxAmount.Equal(dec("4.88")), "tax %s", got.TaxAmount)
	})

	t.Run("Rejects out of range GST", func(t *testing.T) {
		for _, gst := range []string{"-1", "101"} {
			_, err := ComputeOrderTotals(TotalsInput{
				LineTotals: []decimal.Decimal{dec("100")},
				GSTPercent: dec(gst),
			})
			assert.ErrorIs(t, err, ErrValidation)
		}
	})

	t.Run("Rejects negative subtotal", func(t *testing.T) {
		_, err := ComputeOrderTotals(TotalsInput{
			LineTotals: []decimal.Decimal{dec("-100")},
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Rejects unknown discount type", func(t *testing.T) {
		_, err := ComputeOrderTotals(TotalsInput{
			LineTotals:   []decimal.Decimal{dec("100")},
			DiscountType: "bogus",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestComputeSettlement(t *testing.T) {
	entries := []domain.LostDamagedEntry{
		{ID: "e1", Kind: domain.LostDamagedKindDamaged, Quantity: 2, ChargePerUnit: dec("250"), TotalCharge: dec("500")},
		{ID: "e2", Kind: domain.LostDamagedKindLost, Quantity: 1, ChargePerUnit: dec("1200"), TotalCharge: dec("1200")},
	}

	t.Run("Deposit covers deductions", func(t *testing.T) {
		s, err := ComputeSettlement("b1", dec("2000"), entries)
		assert.NoError(t, err)
		assert.True(t, s.DeductionsTotal.Equal(dec("1700")))
		assert.True(t, s.RefundDue.Equal(dec("300")))
		assert.True(t, s.ExtraPayable.IsZero())
	})

	t.Run("Deductions exceed deposit", func(t *testing.T) {
		s, err := ComputeSettlement("b1", dec("1000"), entries)
		assert.NoError(t, err)
		assert.True(t, s.RefundDue.IsZero())
		assert.True(t, s.ExtraPayable.Equal(dec("700")))
	})

	t.Run("No entries refund full deposit", func(t *testing.T) {
		s, err := ComputeSettlement("b1", dec("2000"), nil)
		assert.NoError(t, err)
		assert.True(t, s.RefundDue.Equal(dec("2000")))
		assert.True(t, s.ExtraPayable.IsZero())
	})

	t.Run("Rejects negative deposit", func(t *testing.T) {
		_, err := ComputeSettlement("b1", dec("-1"), nil)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
