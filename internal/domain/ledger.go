package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type TransactionSubtype string

const (
	TransactionSubtypeSettlementCharge TransactionSubtype = "settlement_charge"
	TransactionSubtypeDepositRefund    TransactionSubtype = "deposit_refund"
	TransactionSubtypeLostDamagedAudit TransactionSubtype = "lost_damaged_audit"
	TransactionSubtypeReversal         TransactionSubtype = "reversal"
)

// FinancialTransaction is the durable audit record for money movements and
// irreversible stock mutations. Every applied LostDamagedEntry gets one.
type FinancialTransaction struct {
	ID              string             `json:"id"`
	BookingID       *string            `json:"booking_id,omitempty"`
	Amount          decimal.Decimal    `json:"amount"`
	Type            TransactionType    `json:"type"`
	Subtype         TransactionSubtype `json:"subtype"`
	ReferenceNumber string             `json:"reference_number"`
	Description     string             `json:"description"`
	CreatedOn       time.Time          `json:"created_on"`
}
