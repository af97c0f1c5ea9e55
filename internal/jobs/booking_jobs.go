package jobs

import (
	"context"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
)

// MarkCompletedBookings marks confirmed or ongoing bookings whose trip end
// date has passed as completed.
func (jr *JobRunner) MarkCompletedBookings() {
	jr.runWithRecovery("MarkCompletedBookings", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		ended, err := jr.store.BookingRepository.ListEndedBefore(ctx, today,
			[]string{string(domain.BookingStatusConfirmed), string(domain.BookingStatusOngoing)})
		if err != nil {
			logger.Error("Failed to list ended bookings", "error", err)
			return
		}

		count := 0
		for _, b := range ended {
			if err := jr.store.BookingRepository.UpdateStatus(ctx, b.ID, domain.BookingStatusCompleted); err != nil {
				logger.Error("Failed to mark booking completed", "reference", b.Reference, "error", err)
				continue
			}
			count++
			logger.Debug("Marked booking as completed",
				"reference", b.Reference,
				"driver_id", b.DriverID,
				"trip_end_date", b.TripEndDate)
		}

		logger.Info("Marked bookings as completed", "count", count)
	})
}

// SendTripReminders notifies drivers whose trips start tomorrow.
func (jr *JobRunner) SendTripReminders() {
	jr.runWithRecovery("SendTripReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")

		upcoming, err := jr.store.BookingRepository.ListStartingOn(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list upcoming bookings", "error", err)
			return
		}

		count := 0
		for _, b := range upcoming {
			if err := jr.notifier.SendTripReminder(ctx, &b); err != nil {
				logger.Error("Failed to send trip reminder", "reference", b.Reference, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent trip reminders", "count", count, "trip_start_date", tomorrow)
	})
}
