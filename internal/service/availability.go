package service

import (
	"context"
	"time"

	"safawala-crm-backend/internal/engine"
	"safawala-crm-backend/internal/repository"
)

type availabilityService struct {
	productRepo repository.ProductRepository
	bookingRepo repository.BookingRepository
	bufferDays  int
}

func NewAvailabilityService(productRepo repository.ProductRepository, bookingRepo repository.BookingRepository, bufferDays int) AvailabilityService {
	if bufferDays < 0 {
		bufferDays = engine.DefaultBufferDays
	}
	return &availabilityService{
		productRepo: productRepo,
		bookingRepo: bookingRepo,
		bufferDays:  bufferDays,
	}
}

func (s *availabilityService) Check(ctx context.Context, productID string, deliveryDate, returnDate time.Time, requestedQty int) (*AvailabilityReport, error) {
	window, err := engine.NewDateWindow(deliveryDate, returnDate)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	claims, err := s.bookingRepo.ListClaimsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	conflicts := engine.FindConflicts(window, s.bufferDays, claims)
	availability, err := engine.Classify(product.Stock.Available, conflicts, requestedQty)
	if err != nil {
		return nil, err
	}

	report := &AvailabilityReport{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Window:       window,
		Requested:    requestedQty,
		Availability: availability,
		Conflicts:    conflicts,
	}
	if availability.Status != engine.StatusAvailable {
		if next := engine.NextAvailableDate(conflicts); !next.IsZero() {
			report.NextAvailableDate = &next
		}
	}
	return report, nil
}
