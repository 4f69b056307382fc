package engine

import "fmt"

type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusLimited     AvailabilityStatus = "limited"
	StatusUnavailable AvailabilityStatus = "unavailable"
)

// Availability is the result of classifying free stock against a request.
type Availability struct {
	Status            AvailabilityStatus `json:"status"`
	AvailableQuantity int                `json:"available_quantity"`
}

// Classify combines a product's free stock with the quantity already claimed
// by overlapping bookings. Pure: it never mutates stock. The same formula is
// re-evaluated transactionally by the persistence layer at commit time.
//
//	available_quantity = max(0, stockAvailable - sum(conflict quantities))
func Classify(stockAvailable int, conflicts []Conflict, requestedQty int) (Availability, error) {
	if requestedQty <= 0 {
		return Availability{}, fmt.Errorf("%w: requested quantity must be positive, got %d", ErrValidation, requestedQty)
	}
	if stockAvailable < 0 {
		return Availability{}, fmt.Errorf("%w: stock_available is negative (%d)", ErrValidation, stockAvailable)
	}

	claimed := 0
	for _, c := range conflicts {
		claimed += c.Quantity
	}
	available := stockAvailable - claimed
	if available < 0 {
		available = 0
	}

	status := StatusUnavailable
	switch {
	case available >= requestedQty:
		status = StatusAvailable
	case available > 0:
		status = StatusLimited
	}
	return Availability{Status: status, AvailableQuantity: available}, nil
}
