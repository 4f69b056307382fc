package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safawala-crm-backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func window(t *testing.T, start, end time.Time) DateWindow {
	t.Helper()
	w, err := NewDateWindow(start, end)
	assert.NoError(t, err)
	return w
}

func TestNewDateWindow(t *testing.T) {
	t.Run("Normalizes time of day", func(t *testing.T) {
		w, err := NewDateWindow(
			time.Date(2024, 6, 10, 18, 30, 0, 0, time.UTC),
			time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC),
		)
		assert.NoError(t, err)
		assert.Equal(t, date(2024, 6, 10), w.Start)
		assert.Equal(t, date(2024, 6, 12), w.End)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := NewDateWindow(date(2024, 6, 12), date(2024, 6, 10))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Single day window", func(t *testing.T) {
		w, err := NewDateWindow(date(2024, 6, 10), date(2024, 6, 10))
		assert.NoError(t, err)
		assert.Equal(t, w.Start, w.End)
	})
}

func TestDateWindowOverlaps(t *testing.T) {
	base := DateWindow{Start: date(2024, 6, 10), End: date(2024, 6, 12)}

	t.Run("Clearly disjoint windows do not overlap", func(t *testing.T) {
		// other ends more than bufferDays+1 before base starts
		other := DateWindow{Start: date(2024, 6, 1), End: date(2024, 6, 5)}
		assert.False(t, base.Overlaps(other, DefaultBufferDays))
		assert.False(t, other.Overlaps(base, DefaultBufferDays))
	})

	t.Run("Identical windows overlap", func(t *testing.T) {
		assert.True(t, base.Overlaps(base, DefaultBufferDays))
	})

	t.Run("Windows exactly at buffer boundary conflict", func(t *testing.T) {
		// base starts exactly bufferDays after other ends: inclusive bounds
		other := DateWindow{Start: date(2024, 6, 6), End: date(2024, 6, 8)}
		assert.True(t, base.Overlaps(other, 2))
		assert.True(t, other.Overlaps(base, 2))
	})

	t.Run("One day past buffer boundary is clear", func(t *testing.T) {
		other := DateWindow{Start: date(2024, 6, 5), End: date(2024, 6, 7)}
		assert.False(t, base.Overlaps(other, 2))
		assert.False(t, other.Overlaps(base, 2))
	})

	t.Run("Zero buffer falls back to plain interval overlap", func(t *testing.T) {
		touching := DateWindow{Start: date(2024, 6, 12), End: date(2024, 6, 14)}
		apart := DateWindow{Start: date(2024, 6, 13), End: date(2024, 6, 14)}
		assert.True(t, base.Overlaps(touching, 0))
		assert.False(t, base.Overlaps(apart, 0))
	})
}

func TestFindConflicts(t *testing.T) {
	requested := DateWindow{Start: date(2024, 6, 10), End: date(2024, 6, 12)}

	claims := []domain.BookingClaim{
		{
			BookingID: "b1", BookingNumber: "ORD1001", Status: domain.BookingStatusConfirmed,
			DeliveryDate: date(2024, 6, 11), ReturnDate: date(2024, 6, 13),
			Quantity: 3, CustomerName: "Asha Mehta",
		},
		{
			BookingID: "b2", BookingNumber: "ORD1002", Status: domain.BookingStatusCancelled,
			DeliveryDate: date(2024, 6, 11), ReturnDate: date(2024, 6, 13),
			Quantity: 5, CustomerName: "Cancelled Customer",
		},
		{
			BookingID: "b3", BookingNumber: "ORD1003", Status: domain.BookingStatusDelivered,
			DeliveryDate: date(2024, 6, 1), ReturnDate: date(2024, 6, 3),
			Quantity: 2, CustomerName: "Far Away",
		},
		{
			BookingID: "b4", BookingNumber: "ORD1004", Status: domain.BookingStatusInProgress,
			DeliveryDate: date(2024, 6, 7), ReturnDate: date(2024, 6, 8),
			Quantity: 1, CustomerName: "Boundary Case", ReturnStatus: domain.ReturnStatusInProgress,
		},
	}

	t.Run("Filters inactive and non-overlapping claims", func(t *testing.T) {
		conflicts := FindConflicts(requested, DefaultBufferDays, claims)
		assert.Len(t, conflicts, 2)
		// sorted by delivery date
		assert.Equal(t, "ORD1004", conflicts[0].BookingNumber)
		assert.Equal(t, "ORD1001", conflicts[1].BookingNumber)
		assert.Equal(t, domain.ReturnStatusInProgress, conflicts[0].ReturnStatus)
	})

	t.Run("Deterministic for identical input", func(t *testing.T) {
		a := FindConflicts(requested, DefaultBufferDays, claims)
		b := FindConflicts(requested, DefaultBufferDays, claims)
		assert.Equal(t, a, b)
	})

	t.Run("Empty result for no claims", func(t *testing.T) {
		conflicts := FindConflicts(requested, DefaultBufferDays, nil)
		assert.Empty(t, conflicts)
	})
}

func TestNextAvailableDate(t *testing.T) {
	t.Run("Day after latest conflicting return", func(t *testing.T) {
		conflicts := []Conflict{
			{Window: DateWindow{Start: date(2024, 6, 1), End: date(2024, 6, 9)}},
			{Window: DateWindow{Start: date(2024, 6, 5), End: date(2024, 6, 14)}},
		}
		assert.Equal(t, date(2024, 6, 15), NextAvailableDate(conflicts))
	})

	t.Run("Zero time when no conflicts", func(t *testing.T) {
		assert.True(t, NextAvailableDate(nil).IsZero())
	})
}
