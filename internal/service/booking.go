package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/engine"
	"safawala-crm-backend/internal/repository"
)

type bookingService struct {
	bookingRepo     repository.BookingRepository
	availabilitySvc AvailabilityService
	pricingSvc      PricingService
}

func NewBookingService(bookingRepo repository.BookingRepository, availabilitySvc AvailabilityService, pricingSvc PricingService) BookingService {
	return &bookingService{
		bookingRepo:     bookingRepo,
		availabilitySvc: availabilitySvc,
		pricingSvc:      pricingSvc,
	}
}

func (s *bookingService) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if _, err := engine.NewDateWindow(req.DeliveryDate, req.ReturnDate); err != nil {
		return nil, err
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: booking has no lines", engine.ErrValidation)
	}

	// Advisory availability pass per product. The definitive check happens
	// inside ConfirmTx; this one exists to fail early with conflict detail.
	for productID, qty := range claimedByProduct(req.Lines) {
		report, err := s.availabilitySvc.Check(ctx, productID, req.DeliveryDate, req.ReturnDate, qty)
		if err != nil {
			return nil, err
		}
		if report.Availability.Status == engine.StatusUnavailable ||
			report.Availability.AvailableQuantity < qty {
			return nil, fmt.Errorf("product %s has %d units free for the window, need %d: %w",
				productID, report.Availability.AvailableQuantity, qty, engine.ErrInsufficientStock)
		}
	}

	for i := range req.Lines {
		req.Lines[i].DistanceKm = req.DistanceKm
	}
	quote, err := s.pricingSvc.QuoteOrder(ctx, TotalsRequest{
		Lines:          req.Lines,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		CouponDiscount: req.CouponDiscount,
		AmountPaid:     req.AmountPaid,
	})
	if err != nil {
		return nil, err
	}

	discountValue, err := parseAmount(req.DiscountValue)
	if err != nil {
		return nil, err
	}

	status := domain.BookingStatusQuote
	if req.Confirm {
		status = domain.BookingStatusConfirmed
	}
	b := &domain.Booking{
		BookingNumber:   newBookingNumber(),
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		Status:          status,
		EventDate:       req.EventDate,
		DeliveryDate:    req.DeliveryDate,
		ReturnDate:      req.ReturnDate,
		VenueAddress:    req.VenueAddress,
		DistanceKm:      req.DistanceKm,
		DiscountType:    req.DiscountType,
		DiscountValue:   discountValue,
		CouponCode:      req.CouponCode,
		CouponDiscount:  quote.Totals.CouponDiscount,
		TaxAmount:       quote.Totals.TaxAmount,
		SecurityDeposit: quote.Totals.SecurityDeposit,
		SubtotalAmount:  quote.Totals.Subtotal,
		TotalAmount:     quote.Totals.GrandTotal,
		AmountPaid:      quote.Totals.AmountPaid,
		PendingAmount:   quote.Totals.PendingAmount,
		Notes:           req.Notes,
	}
	for i, lr := range req.Lines {
		lq := quote.Lines[i]
		b.Items = append(b.Items, domain.BookingItem{
			ProductID:    lr.ProductID,
			VariantID:    lr.VariantID,
			LevelID:      lr.LevelID,
			Quantity:     lr.Quantity,
			ExtraUnits:   lr.ExtraUnits,
			MissingUnits: lr.MissingUnits,
			UnitPrice:    lq.Breakdown.UnitPrice,
			TotalPrice:   lq.Breakdown.LineTotal,
		})
	}

	if req.Confirm {
		err = s.bookingRepo.ConfirmTx(ctx, b)
	} else {
		err = s.bookingRepo.Create(ctx, b)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) Cancel(ctx context.Context, id string) error {
	return s.bookingRepo.ReleaseTx(ctx, id)
}

func (s *bookingService) ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Booking, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.bookingRepo.ListByCustomer(ctx, customerID, page, pageSize)
}

// claimedByProduct aggregates requested quantities per product; a booking
// may carry several lines against the same product.
func claimedByProduct(lines []LineRequest) map[string]int {
	claims := make(map[string]int)
	for _, l := range lines {
		if l.ProductID == "" {
			continue
		}
		claims[l.ProductID] += l.Quantity
	}
	return claims
}

func newBookingNumber() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
