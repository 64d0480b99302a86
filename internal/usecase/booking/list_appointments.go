package booking

import (
	"context"
	"time"

	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
	"github.com/glowslot/salon-scheduler/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		uc.loc,
	)
	end := time.Date(
		date.Year(), date.Month(), date.Day()+1,
		0, 0, 0, 0,
		uc.loc,
	)

	appointments, err := uc.repo.ListAppointmentsBetween(ctx, salonID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			Reference:     ap.Reference,
			CustomerName:  ap.CustomerName,
			CustomerPhone: ap.CustomerPhone,
			StartTime:     ap.StartTime,
			CreatedAt:     ap.CreatedAt,
		})
	}

	return out, nil
}
