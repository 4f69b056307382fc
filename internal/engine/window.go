package engine

import (
	"fmt"
	"time"
)

// DefaultBufferDays is the padding applied to date windows before testing
// overlap, covering turnaround and cleaning time between bookings.
const DefaultBufferDays = 2

// DateWindow is a calendar-date interval from delivery to return, both ends
// inclusive. Time-of-day is ignored for overlap purposes.
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateWindow normalizes both dates to midnight UTC and validates order.
func NewDateWindow(start, end time.Time) (DateWindow, error) {
	w := DateWindow{Start: atMidnight(start), End: atMidnight(end)}
	if w.End.Before(w.Start) {
		return DateWindow{}, fmt.Errorf("%w: window end %s before start %s", ErrValidation, w.End.Format("2006-01-02"), w.Start.Format("2006-01-02"))
	}
	return w, nil
}

// Overlaps reports whether a and b overlap once each comparison window is
// expanded by bufferDays on the start side. Bounds are inclusive: windows
// that sit exactly at the buffer boundary DO conflict.
func (w DateWindow) Overlaps(other DateWindow, bufferDays int) bool {
	aStart := w.Start.AddDate(0, 0, -bufferDays)
	bStart := other.Start.AddDate(0, 0, -bufferDays)
	return !aStart.After(other.End) && !bStart.After(w.End)
}

func atMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
