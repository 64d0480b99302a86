package booking

import (
	"context"
	"time"

	"github.com/glowslot/salon-scheduler/internal/clock"
	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
)

type GetStats struct {
	repo  domain.Repository
	clock clock.Clock
	loc   *time.Location
}

func NewGetStats(
	repo domain.Repository,
	clk clock.Clock,
	loc *time.Location,
) *GetStats {
	return &GetStats{
		repo:  repo,
		clock: clk,
		loc:   loc,
	}
}

// Execute counts all salons, appointments starting today and schedules dated
// today or later. "Today" is the injected clock's day in the app timezone.
func (uc *GetStats) Execute(ctx context.Context) (*domain.Stats, error) {
	now := uc.clock.Now().In(uc.loc)

	dayStart := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0,
		uc.loc,
	)
	dayEnd := time.Date(
		now.Year(), now.Month(), now.Day()+1,
		0, 0, 0, 0,
		uc.loc,
	)

	salons, err := uc.repo.CountSalons(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.CountAppointmentsBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	schedules, err := uc.repo.CountSchedulesFrom(ctx, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		Salons:       salons,
		Appointments: appointments,
		Schedules:    schedules,
	}, nil
}
