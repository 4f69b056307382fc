package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusQuote      BookingStatus = "quote"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusDelivered  BookingStatus = "delivered"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusReturned   BookingStatus = "returned"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Active reports whether the booking currently withholds stock.
// Quotes and closed bookings do not count against availability.
func (s BookingStatus) Active() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusDelivered, BookingStatusInProgress:
		return true
	}
	return false
}

// ReturnStatus is the reduced status shown on conflict rows: whether the
// conflicting booking's items came back already or are still out.
type ReturnStatus string

const (
	ReturnStatusReturned   ReturnStatus = "returned"
	ReturnStatusInProgress ReturnStatus = "in_progress"
)

type Booking struct {
	ID            string        `json:"id"`
	BookingNumber string        `json:"booking_number"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	Status        BookingStatus `json:"status"`
	EventDate     time.Time     `json:"event_date"`
	DeliveryDate  time.Time     `json:"delivery_date"`
	ReturnDate    time.Time     `json:"return_date"`
	VenueAddress  string        `json:"venue_address,omitempty"`
	DistanceKm    float64       `json:"distance_km"`

	DiscountType    DiscountType    `json:"discount_type"`
	DiscountValue   decimal.Decimal `json:"discount_value"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	CouponDiscount  decimal.Decimal `json:"coupon_discount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	SubtotalAmount  decimal.Decimal `json:"subtotal_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`

	Notes     string        `json:"notes,omitempty"`
	Items     []BookingItem `json:"items,omitempty"`
	CreatedOn time.Time     `json:"created_on"`
	UpdatedOn time.Time     `json:"updated_on"`
}

type BookingItem struct {
	ID           string          `json:"id"`
	BookingID    string          `json:"booking_id"`
	ProductID    string          `json:"product_id,omitempty"`
	VariantID    string          `json:"variant_id,omitempty"`
	LevelID      string          `json:"level_id,omitempty"`
	Quantity     int             `json:"quantity"`
	ExtraUnits   int             `json:"extra_units"`
	MissingUnits int             `json:"missing_units"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// BookingClaim is the flat view of one booking's claim on a product, as
// loaded for overlap checks. The engine filters claims by Status.Active().
type BookingClaim struct {
	BookingID     string        `json:"booking_id"`
	BookingNumber string        `json:"booking_number"`
	Status        BookingStatus `json:"status"`
	DeliveryDate  time.Time     `json:"delivery_date"`
	ReturnDate    time.Time     `json:"return_date"`
	Quantity      int           `json:"quantity"`
	CustomerName  string        `json:"customer_name"`
	ReturnStatus  ReturnStatus  `json:"return_status,omitempty"`
}
