package engine

import (
	"sort"
	"time"

	"safawala-crm-backend/internal/domain"
)

// Conflict describes one active booking whose claim on a product overlaps a
// requested window. Conflicts are advisory data for the caller, not errors.
type Conflict struct {
	BookingID     string              `json:"booking_id"`
	BookingNumber string              `json:"booking_number"`
	Window        DateWindow          `json:"window"`
	Quantity      int                 `json:"quantity"`
	CustomerName  string              `json:"customer_name"`
	ReturnStatus  domain.ReturnStatus `json:"return_status,omitempty"`
}

// FindConflicts resolves which of the supplied claims overlap the requested
// window once expanded by bufferDays. Only active claims (confirmed,
// delivered, in_progress) are tested. The result is deterministic: sorted by
// delivery date, then booking number.
func FindConflicts(requested DateWindow, bufferDays int, claims []domain.BookingClaim) []Conflict {
	conflicts := make([]Conflict, 0, len(claims))
	for _, c := range claims {
		if !c.Status.Active() {
			continue
		}
		w := DateWindow{Start: atMidnight(c.DeliveryDate), End: atMidnight(c.ReturnDate)}
		if !requested.Overlaps(w, bufferDays) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			BookingID:     c.BookingID,
			BookingNumber: c.BookingNumber,
			Window:        w,
			Quantity:      c.Quantity,
			CustomerName:  c.CustomerName,
			ReturnStatus:  c.ReturnStatus,
		})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		if !conflicts[i].Window.Start.Equal(conflicts[j].Window.Start) {
			return conflicts[i].Window.Start.Before(conflicts[j].Window.Start)
		}
		return conflicts[i].BookingNumber < conflicts[j].BookingNumber
	})
	return conflicts
}

// NextAvailableDate returns the day after the latest conflicting return, or
// the zero time when there are no conflicts to wait out.
func NextAvailableDate(conflicts []Conflict) time.Time {
	var latest time.Time
	for _, c := range conflicts {
		if c.Window.End.After(latest) {
			latest = c.Window.End
		}
	}
	if latest.IsZero() {
		return time.Time{}
	}
	return latest.AddDate(0, 0, 1)
}
