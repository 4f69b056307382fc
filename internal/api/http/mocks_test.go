package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/service"
)

// MockAvailabilityService
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) Check(ctx context.Context, productID string, deliveryDate, returnDate time.Time, requestedQty int) (*service.AvailabilityReport, error) {
	args := m.Called(ctx, productID, deliveryDate, returnDate, requestedQty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AvailabilityReport), args.Error(1)
}

// MockPricingService
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) QuoteLine(ctx context.Context, req service.LineRequest) (*service.LineQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LineQuote), args.Error(1)
}
func (m *MockPricingService) QuoteOrder(ctx context.Context, req service.TotalsRequest) (*service.OrderQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderQuote), args.Error(1)
}

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, req service.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) Cancel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingService) ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

// MockReturnsService
type MockReturnsService struct {
	mock.Mock
}

func (m *MockReturnsService) Process(ctx context.Context, bookingID string, req service.ReturnRequest) (*domain.Settlement, error) {
	args := m.Called(ctx, bookingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}
func (m *MockReturnsService) ReverseLostDamaged(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}
