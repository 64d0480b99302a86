package booking

import (
	"time"

	"github.com/glowslot/salon-scheduler/internal/models"
)

// StartTimeLayout is the local wall-clock form used on the wire for slot
// starts and booking requests.
const StartTimeLayout = "2006-01-02T15:04:05"

type AvailabilityInput struct {
	SalonID uint
	Date    time.Time
}

type TimeSlot struct {
	StartTime   string `json:"start_time"`
	Capacity    int    `json:"capacity"`
	Booked      int    `json:"booked"`
	IsAvailable bool   `json:"is_available"`
}

// DayAvailability is either a closed marker or an ordered slot list,
// never both.
type DayAvailability struct {
	Closed bool
	Slots  []TimeSlot
}

type NearbySalon struct {
	models.Salon
	DistanceKm float64 `json:"distance_km"`
}

type Stats struct {
	Salons       int64 `json:"salons"`
	Appointments int64 `json:"appointments"`
	Schedules    int64 `json:"schedules"`
}
