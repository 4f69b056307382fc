package jobs

import (
	"context"

	"safawala-crm-backend/internal/logger"
)

// SendLowStockAlerts emails the operations inbox about products at or below
// their reorder level.
func (jr *JobRunner) SendLowStockAlerts() {
	jr.runWithRecovery("SendLowStockAlerts", func() {
		ctx := context.Background()

		products, err := jr.store.ListBelowReorderLevel(ctx)
		if err != nil {
			logger.Error("Failed to list low stock products", "error", err)
			return
		}
		if len(products) == 0 {
			logger.Info("No products below reorder level")
			return
		}

		email := jr.config.Booking.AlertEmail
		if email == "" {
			logger.Warn("Low stock detected but no alert email configured", "count", len(products))
			return
		}

		if err := jr.services.Email.SendLowStockAlert(ctx, email, products); err != nil {
			logger.Error("Failed to send low stock alert", "error", err)
			return
		}
		logger.Info("Sent low stock alert", "count", len(products))
	})
}
