package repository

import (
	"context"
	"time"

	"safawala-crm-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error)
	ListBelowReorderLevel(ctx context.Context) ([]domain.Product, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListDeliveredPastReturnDate(ctx context.Context, asOf time.Time) ([]domain.Booking, error)
	ListQuotesOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)

	// ListClaimsByProduct returns every booking's claim on a product along
	// with its status; the engine filters and overlap-tests them.
	ListClaimsByProduct(ctx context.Context, productID string) ([]domain.BookingClaim, error)

	// ConfirmTx atomically re-validates free stock and moves quantity from
	// available to booked for each item, then inserts the booking and its
	// items. Returns engine.ErrInsufficientStock when the commit-time check
	// fails for any item.
	ConfirmTx(ctx context.Context, b *domain.Booking) error

	// ReleaseTx cancels a booking and returns its claimed quantities from
	// booked to available in one transaction.
	ReleaseTx(ctx context.Context, bookingID string) error
}

type PricingRepository interface {
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	GetVariant(ctx context.Context, id string) (*domain.PackageVariant, error)
	GetLevel(ctx context.Context, id string) (*domain.VariantLevel, error)
	ListLevels(ctx context.Context, variantID string) ([]domain.VariantLevel, error)
	ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error)
}

type LedgerRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.FinancialTransaction) error
	ListByBooking(ctx context.Context, bookingID string) ([]domain.FinancialTransaction, error)
}

type ReturnsRepository interface {
	// ApplyReturnTx persists a processed return in one transaction: the new
	// stock state per product, the lost/damaged entries, their ledger audit
	// rows, and the booking's transition to returned.
	ApplyReturnTx(ctx context.Context, bookingID string, stocks map[string]domain.Stock, entries []domain.LostDamagedEntry, audits []domain.FinancialTransaction) error

	GetLostDamagedEntry(ctx context.Context, id string) (*domain.LostDamagedEntry, error)
	ListLostDamagedByBooking(ctx context.Context, bookingID string) ([]domain.LostDamagedEntry, error)

	// ReverseLostDamagedTx marks an entry reversed, restores the product
	// stock to the supplied state and records the offsetting ledger row.
	ReverseLostDamagedTx(ctx context.Context, entryID string, productID string, stock domain.Stock, offset domain.FinancialTransaction) error
}
