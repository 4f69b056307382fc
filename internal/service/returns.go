package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/engine"
	"safawala-crm-backend/internal/repository"
)

type returnsService struct {
	bookingRepo repository.BookingRepository
	productRepo repository.ProductRepository
	returnsRepo repository.ReturnsRepository
}

func NewReturnsService(bookingRepo repository.BookingRepository, productRepo repository.ProductRepository, returnsRepo repository.ReturnsRepository) ReturnsService {
	return &returnsService{
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		returnsRepo: returnsRepo,
	}
}

// Process finalizes a booking's return: it computes every product's next
// stock state, records lost/damaged entries with their ledger audits, and
// settles the deposit. All persistence happens in one transaction.
func (s *returnsService) Process(ctx context.Context, bookingID string, req ReturnRequest) (*domain.Settlement, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusDelivered && booking.Status != domain.BookingStatusInProgress {
		return nil, fmt.Errorf("%w: booking %s in status %s cannot be returned", engine.ErrValidation, bookingID, booking.Status)
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: return has no lines", engine.ErrValidation)
	}

	stocks := make(map[string]domain.Stock, len(req.Lines))
	var entries []domain.LostDamagedEntry
	var audits []domain.FinancialTransaction

	for _, line := range req.Lines {
		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		next, err := engine.ApplyReturn(product.Stock, engine.ReturnCounts{
			Delivered: line.Delivered,
			Returned:  line.Returned,
			ToLaundry: line.ToLaundry,
			Damaged:   line.Damaged,
			Lost:      line.Lost,
		})
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, err)
		}
		stocks[line.ProductID] = next

		if line.Damaged > 0 {
			entries = append(entries, newLostDamagedEntry(bookingID, product.ID, domain.LostDamagedKindDamaged, line.Damaged, product.DamageFee, line.Reason))
		}
		if line.Lost > 0 {
			entries = append(entries, newLostDamagedEntry(bookingID, product.ID, domain.LostDamagedKindLost, line.Lost, product.LostFee, line.Reason))
		}
	}

	for _, e := range entries {
		audits = append(audits, domain.FinancialTransaction{
			BookingID:       &booking.ID,
			Amount:          e.TotalCharge,
			Type:            domain.TransactionTypeIncome,
			Subtype:         domain.TransactionSubtypeLostDamagedAudit,
			ReferenceNumber: booking.BookingNumber,
			Description:     fmt.Sprintf("%s %d x %s", e.Kind, e.Quantity, e.ProductID),
		})
	}

	settlement, err := engine.ComputeSettlement(booking.ID, booking.SecurityDeposit, entries)
	if err != nil {
		return nil, err
	}
	if settlement.RefundDue.IsPositive() {
		audits = append(audits, domain.FinancialTransaction{
			BookingID:       &booking.ID,
			Amount:          settlement.RefundDue,
			Type:            domain.TransactionTypeExpense,
			Subtype:         domain.TransactionSubtypeDepositRefund,
			ReferenceNumber: booking.BookingNumber,
			Description:     "security deposit refund",
		})
	}
	if settlement.ExtraPayable.IsPositive() {
		audits = append(audits, domain.FinancialTransaction{
			BookingID:       &booking.ID,
			Amount:          settlement.ExtraPayable,
			Type:            domain.TransactionTypeIncome,
			Subtype:         domain.TransactionSubtypeSettlementCharge,
			ReferenceNumber: booking.BookingNumber,
			Description:     "deductions beyond deposit",
		})
	}

	if err := s.returnsRepo.ApplyReturnTx(ctx, bookingID, stocks, entries, audits); err != nil {
		return nil, err
	}
	return &settlement, nil
}

func (s *returnsService) ReverseLostDamaged(ctx context.Context, entryID string) error {
	entry, err := s.returnsRepo.GetLostDamagedEntry(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.Reversed {
		return fmt.Errorf("%w: entry %s is already reversed", engine.ErrValidation, entryID)
	}

	product, err := s.productRepo.GetByID(ctx, entry.ProductID)
	if err != nil {
		return err
	}
	next, err := engine.ReverseLostDamaged(product.Stock, *entry)
	if err != nil {
		return err
	}

	offset := domain.FinancialTransaction{
		BookingID:       &entry.BookingID,
		Amount:          entry.TotalCharge,
		Type:            domain.TransactionTypeExpense,
		Subtype:         domain.TransactionSubtypeReversal,
		ReferenceNumber: entry.ID,
		Description:     fmt.Sprintf("reversal of %s entry %s", entry.Kind, entry.ID),
	}
	return s.returnsRepo.ReverseLostDamagedTx(ctx, entryID, entry.ProductID, next, offset)
}

func newLostDamagedEntry(bookingID, productID string, kind domain.LostDamagedKind, qty int, chargePerUnit decimal.Decimal, reason string) domain.LostDamagedEntry {
	return domain.LostDamagedEntry{
		BookingID:     bookingID,
		ProductID:     productID,
		Kind:          kind,
		Quantity:      qty,
		ChargePerUnit: chargePerUnit,
		TotalCharge:   chargePerUnit.Mul(decimal.NewFromInt(int64(qty))),
		Reason:        reason,
	}
}
