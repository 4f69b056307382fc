package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/engine"
)

// AvailabilityReport is the advisory view returned to the dashboard: free
// quantity for the window, the conflicting bookings, and the first date the
// request could be satisfied. It does not reserve anything.
type AvailabilityReport struct {
	ProductID         string              `json:"product_id"`
	ProductName       string              `json:"product_name"`
	Window            engine.DateWindow   `json:"window"`
	Requested         int                 `json:"requested_quantity"`
	Availability      engine.Availability `json:"availability"`
	Conflicts         []engine.Conflict   `json:"conflicts"`
	NextAvailableDate *time.Time          `json:"next_available_date,omitempty"`
}

// LineRequest identifies one order line to price: a package variant with an
// optional level upgrade, plus per-line unit adjustments.
type LineRequest struct {
	ProductID    string  `json:"product_id,omitempty"`
	VariantID    string  `json:"variant_id"`
	LevelID      string  `json:"level_id,omitempty"`
	Quantity     int     `json:"quantity"`
	ExtraUnits   int     `json:"extra_units"`
	MissingUnits int     `json:"missing_units"`
	DistanceKm   float64 `json:"distance_km"`
}

// LineQuote pairs the resolved catalog names with the price breakdown.
// Deposit is the variant's security deposit, falling back to the category
// default when the variant carries none.
type LineQuote struct {
	VariantID   string               `json:"variant_id"`
	VariantName string               `json:"variant_name"`
	LevelName   string               `json:"level_name,omitempty"`
	Breakdown   engine.LineBreakdown `json:"breakdown"`
	Deposit     decimal.Decimal      `json:"deposit"`
}

// TotalsRequest prices a whole order: every line plus order-level
// adjustments. GST percentage comes from configuration, not the caller.
type TotalsRequest struct {
	Lines          []LineRequest       `json:"lines"`
	DiscountType   domain.DiscountType `json:"discount_type"`
	DiscountValue  string              `json:"discount_value"`
	CouponDiscount string              `json:"coupon_discount"`
	AmountPaid     string              `json:"amount_paid"`
}

// OrderQuote is the full pricing response: per-line breakdowns and the
// staged order totals.
type OrderQuote struct {
	Lines  []LineQuote        `json:"lines"`
	Totals domain.OrderTotals `json:"totals"`
}

// CreateBookingRequest creates a quote or, when Confirm is set, a confirmed
// booking that claims stock transactionally.
type CreateBookingRequest struct {
	CustomerID     string              `json:"customer_id"`
	CustomerName   string              `json:"customer_name"`
	EventDate      time.Time           `json:"event_date"`
	DeliveryDate   time.Time           `json:"delivery_date"`
	ReturnDate     time.Time           `json:"return_date"`
	VenueAddress   string              `json:"venue_address,omitempty"`
	DistanceKm     float64             `json:"distance_km"`
	Lines          []LineRequest       `json:"lines"`
	DiscountType   domain.DiscountType `json:"discount_type"`
	DiscountValue  string              `json:"discount_value"`
	CouponCode     string              `json:"coupon_code,omitempty"`
	CouponDiscount string              `json:"coupon_discount"`
	AmountPaid     string              `json:"amount_paid"`
	Notes          string              `json:"notes,omitempty"`
	Confirm        bool                `json:"confirm"`
}

// ReturnLine reports where one product's delivered units ended up.
type ReturnLine struct {
	ProductID string `json:"product_id"`
	Delivered int    `json:"delivered"`
	Returned  int    `json:"returned"`
	ToLaundry int    `json:"to_laundry"`
	Damaged   int    `json:"damaged"`
	Lost      int    `json:"lost"`
	Reason    string `json:"reason,omitempty"`
}

// ReturnRequest finalizes a booking's return.
type ReturnRequest struct {
	Lines []ReturnLine `json:"lines"`
}

type AvailabilityService interface {
	Check(ctx context.Context, productID string, deliveryDate, returnDate time.Time, requestedQty int) (*AvailabilityReport, error)
}

type PricingService interface {
	QuoteLine(ctx context.Context, req LineRequest) (*LineQuote, error)
	QuoteOrder(ctx context.Context, req TotalsRequest) (*OrderQuote, error)
}

type BookingService interface {
	Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
	ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type ReturnsService interface {
	Process(ctx context.Context, bookingID string, req ReturnRequest) (*domain.Settlement, error)
	ReverseLostDamaged(ctx context.Context, entryID string) error
}

type EmailService interface {
	SendOverdueReturnReminder(ctx context.Context, email, customerName, bookingNumber string, returnDate time.Time) error
	SendLowStockAlert(ctx context.Context, email string, products []domain.Product) error
}
