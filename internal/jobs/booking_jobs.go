package jobs

import (
	"context"
	"time"

	"safawala-crm-backend/internal/domain"
	"safawala-crm-backend/internal/logger"
)

// MarkOverdueReturns moves delivered bookings past their return date to
// in_progress and nudges the operations inbox about each one. The booking
// keeps counting against availability until its return is processed.
func (jr *JobRunner) MarkOverdueReturns() {
	jr.runWithRecovery("MarkOverdueReturns", func() {
		ctx := context.Background()

		overdue, err := jr.store.ListDeliveredPastReturnDate(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue returns", "error", err)
			return
		}

		count := 0
		for _, b := range overdue {
			if err := jr.store.UpdateStatus(ctx, b.ID, domain.BookingStatusInProgress); err != nil {
				logger.Error("Failed to mark booking overdue", "booking_id", b.ID, "error", err)
				continue
			}
			count++

			if jr.config.Booking.AlertEmail != "" {
				err := jr.services.Email.SendOverdueReturnReminder(ctx, jr.config.Booking.AlertEmail, b.CustomerName, b.BookingNumber, b.ReturnDate)
				if err != nil {
					logger.Error("Failed to send overdue reminder", "booking_id", b.ID, "error", err)
				}
			}
		}

		logger.Info("Marked bookings with overdue returns", "count", count)
	})
}

// ExpireStaleQuotes cancels quotes that were never confirmed within the
// configured expiry window. Quotes hold no stock, so no stock restore runs.
func (jr *JobRunner) ExpireStaleQuotes() {
	jr.runWithRecovery("ExpireStaleQuotes", func() {
		ctx := context.Background()

		expiryDays := jr.config.Booking.QuoteExpiryDays
		if expiryDays <= 0 {
			expiryDays = 30
		}
		cutoff := time.Now().AddDate(0, 0, -expiryDays)

		stale, err := jr.store.ListQuotesOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale quotes", "error", err)
			return
		}

		count := 0
		for _, b := range stale {
			if err := jr.store.UpdateStatus(ctx, b.ID, domain.BookingStatusCancelled); err != nil {
				logger.Error("Failed to expire quote", "booking_id", b.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Expired stale quotes", "count", count, "older_than_days", expiryDays)
	})
}
