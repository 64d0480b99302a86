package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/glowslot/salon-scheduler/internal/clock"
	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
)

type GetAvailability struct {
	repo  domain.Repository
	clock clock.Clock
	loc   *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	clk clock.Clock,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		clock: clk,
		loc:   loc,
	}
}

// Execute is a pure read: it derives the day's slot list from the salon's
// hours, the date's schedule and the bookings already on file. An unknown
// salon or a date without a schedule both come back as closed rather than
// an error, so the availability endpoint always answers.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.DayAvailability, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.DayAvailability{Closed: true}, nil
		}
		return nil, err
	}

	date := in.Date.Format("2006-01-02")

	schedule, err := uc.repo.GetSchedule(ctx, in.SalonID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.DayAvailability{Closed: true}, nil
		}
		return nil, err
	}

	slotTimes, err := domain.SlotTimes(
		in.Date,
		salon.OpeningTime,
		salon.ClosingTime,
		uc.loc,
	)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		uc.loc,
	)
	dayEnd := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day()+1,
		0, 0, 0, 0,
		uc.loc,
	)

	appointments, err := uc.repo.ListAppointmentsBetween(
		ctx,
		in.SalonID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	booked := make(map[int64]int, len(appointments))
	for _, ap := range appointments {
		booked[ap.StartTime.Unix()]++
	}

	now := uc.clock.Now()

	slots := make([]domain.TimeSlot, 0, len(slotTimes))
	for _, start := range slotTimes {
		count := booked[start.Unix()]

		slots = append(slots, domain.TimeSlot{
			StartTime:   start.Format(domain.StartTimeLayout),
			Capacity:    schedule.NumWorkers,
			Booked:      count,
			IsAvailable: start.After(now) && count < schedule.NumWorkers,
		})
	}

	return &domain.DayAvailability{Slots: slots}, nil
}
