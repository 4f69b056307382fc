package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"safawala-crm-backend/internal/domain"
)

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Product), args.Get(1).(int32), args.Error(2)
}
func (m *MockProductRepo) ListBelowReorderLevel(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListDeliveredPastReturnDate(ctx context.Context, asOf time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListQuotesOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListClaimsByProduct(ctx context.Context, productID string) ([]domain.BookingClaim, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.BookingClaim), args.Error(1)
}
func (m *MockBookingRepo) ConfirmTx(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) ReleaseTx(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockPricingRepo
type MockPricingRepo struct {
	mock.Mock
}

func (m *MockPricingRepo) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockPricingRepo) GetVariant(ctx context.Context, id string) (*domain.PackageVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PackageVariant), args.Error(1)
}
func (m *MockPricingRepo) GetLevel(ctx context.Context, id string) (*domain.VariantLevel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VariantLevel), args.Error(1)
}
func (m *MockPricingRepo) ListLevels(ctx context.Context, variantID string) ([]domain.VariantLevel, error) {
	args := m.Called(ctx, variantID)
	return args.Get(0).([]domain.VariantLevel), args.Error(1)
}
func (m *MockPricingRepo) ListDistanceTiers(ctx context.Context) ([]domain.DistanceTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DistanceTier), args.Error(1)
}

// MockReturnsRepo
type MockReturnsRepo struct {
	mock.Mock
}

func (m *MockReturnsRepo) ApplyReturnTx(ctx context.Context, bookingID string, stocks map[string]domain.Stock, entries []domain.LostDamagedEntry, audits []domain.FinancialTransaction) error {
	args := m.Called(ctx, bookingID, stocks, entries, audits)
	return args.Error(0)
}
func (m *MockReturnsRepo) GetLostDamagedEntry(ctx context.Context, id string) (*domain.LostDamagedEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LostDamagedEntry), args.Error(1)
}
func (m *MockReturnsRepo) ListLostDamagedByBooking(ctx context.Context, bookingID string) ([]domain.LostDamagedEntry, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.LostDamagedEntry), args.Error(1)
}
func (m *MockReturnsRepo) ReverseLostDamagedTx(ctx context.Context, entryID string, productID string, stock domain.Stock, offset domain.FinancialTransaction) error {
	args := m.Called(ctx, entryID, productID, stock, offset)
	return args.Error(0)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) CreateTransaction(ctx context.Context, tx *domain.FinancialTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockLedgerRepo) ListByBooking(ctx context.Context, bookingID string) ([]domain.FinancialTransaction, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.FinancialTransaction), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueReturnReminder(ctx context.Context, email, customerName, bookingNumber string, returnDate time.Time) error {
	args := m.Called(ctx, email, customerName, bookingNumber, returnDate)
	return args.Error(0)
}
func (m *MockEmailService) SendLowStockAlert(ctx context.Context, email string, products []domain.Product) error {
	args := m.Called(ctx, email, products)
	return args.Error(0)
}
