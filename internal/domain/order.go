package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderTotals is derived, never stored independently: it is recomputed from
// its inputs on every read.
type OrderTotals struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	CouponDiscount   decimal.Decimal `json:"coupon_discount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	SecurityDeposit  decimal.Decimal `json:"security_deposit"`
	LostDamagedTotal decimal.Decimal `json:"lost_damaged_total"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	// PendingAmount may be negative: an overpayment the customer is owed.
	PendingAmount decimal.Decimal `json:"pending_amount"`
}

type LostDamagedKind string

const (
	LostDamagedKindLost    LostDamagedKind = "lost"
	LostDamagedKindDamaged LostDamagedKind = "damaged"
)

// LostDamagedEntry permanently removes stock from circulation and charges
// the customer. Created only when a return is finalized; reversal is a
// separate explicit operation, never an error-recovery path.
type LostDamagedEntry struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"booking_id"`
	ProductID     string          `json:"product_id"`
	Kind          LostDamagedKind `json:"kind"`
	Quantity      int             `json:"quantity"`
	ChargePerUnit decimal.Decimal `json:"charge_per_unit"`
	TotalCharge   decimal.Decimal `json:"total_charge"`
	Reason        string          `json:"reason,omitempty"`
	Reversed      bool            `json:"reversed"`
	CreatedOn     time.Time       `json:"created_on"`
}

// Settlement closes out a booking's refundable deposit against its
// lost/damaged deductions.
type Settlement struct {
	BookingID       string          `json:"booking_id"`
	Deposit         decimal.Decimal `json:"deposit"`
	DeductionsTotal decimal.Decimal `json:"deductions_total"`
	RefundDue       decimal.Decimal `json:"refund_due"`
	ExtraPayable    decimal.Decimal `json:"extra_payable"`
}
