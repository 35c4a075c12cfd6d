package jobs

import (
	"context"
	"time"

	"carebook-backend/internal/logger"
)

// SendBookingReminders emails participants whose pending bookings are
// scheduled within the next 24 hours. Runs daily.
func (jr *JobRunner) SendBookingReminders() {
	jr.runWithRecovery("send-booking-reminders", func() {
		ctx := context.Background()
		now := time.Now()
		bookings, err := jr.store.ListScheduledBetween(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to list upcoming bookings", "error", err)
			return
		}

		sent := 0
		for _, b := range bookings {
			user, err := jr.store.UserRepository.GetByID(ctx, b.UserID)
			if err != nil {
				logger.Warn("Skipping reminder, user lookup failed", "booking_id", b.ID, "error", err)
				continue
			}
			listing, err := jr.store.ListingRepository.GetByID(ctx, b.ListingID)
			if err != nil {
				logger.Warn("Skipping reminder, listing lookup failed", "booking_id", b.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendBookingReminder(ctx, user.Email, user.Name, listing.Title, b.ScheduledAt); err != nil {
				logger.Warn("Failed to send booking reminder", "booking_id", b.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Booking reminders sent", "count", sent, "upcoming", len(bookings))
	})
}
