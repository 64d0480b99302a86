package handlers

import (
	"time"

	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
)

// All wall-clock input is interpreted in the single configured app timezone.

func parseDateIn(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

func parseStartTimeIn(loc *time.Location, s string) (time.Time, error) {
	return time.ParseInLocation(domain.StartTimeLayout, s, loc)
}

func isValidHM(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}

func hoursOrdered(openingHM, closingHM string) bool {
	open, err := time.Parse("15:04", openingHM)
	if err != nil {
		return false
	}
	close, err := time.Parse("15:04", closingHM)
	if err != nil {
		return false
	}
	return open.Before(close)
}
