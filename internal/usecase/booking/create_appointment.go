package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/glowslot/salon-scheduler/internal/audit"
	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
	"github.com/glowslot/salon-scheduler/internal/httperr"
	"github.com/glowslot/salon-scheduler/internal/models"
)

type CreateAppointmentInput struct {
	SalonID uint

	CustomerName  string
	CustomerPhone string

	StartTime time.Time
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: dispatcher,
	}
}

// Execute books one appointment. The start must land on the 15-minute grid
// inside the salon's opening hours; the capacity check and the insert happen
// inside Repository.BookAppointment as a single transactional unit.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSalonNotFound)
		}
		return nil, err
	}

	if !domain.WithinHours(in.StartTime, salon.OpeningTime, salon.ClosingTime) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}
	if !domain.OnSlotGrid(in.StartTime, salon.OpeningTime) {
		return nil, httperr.ErrBusiness(httperr.CodeOffSlotGrid)
	}

	ap := &models.Appointment{
		SalonID:       in.SalonID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		StartTime:     in.StartTime,
		Reference:     uuid.NewString(),
	}

	date := in.StartTime.Format("2006-01-02")

	if err := uc.repo.BookAppointment(ctx, ap, date); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
