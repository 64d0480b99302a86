package booking

import (
	"context"
	"time"

	"github.com/glowslot/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	ListSalonsWithCoordinates(
		ctx context.Context,
	) ([]models.Salon, error)

	// -------- Schedule --------
	GetSchedule(
		ctx context.Context,
		salonID uint,
		date string,
	) (*models.DailySchedule, error)

	UpsertSchedule(
		ctx context.Context,
		schedule *models.DailySchedule,
	) error

	// -------- Appointment --------
	CountAppointmentsAt(
		ctx context.Context,
		salonID uint,
		start time.Time,
	) (int64, error)

	ListAppointmentsBetween(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// BookAppointment runs the capacity check and the insert as one
	// transactional unit keyed on the schedule row for ap's date.
	BookAppointment(
		ctx context.Context,
		ap *models.Appointment,
		date string,
	) error

	// -------- Stats --------
	CountSalons(ctx context.Context) (int64, error)

	CountAppointmentsBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)

	CountSchedulesFrom(
		ctx context.Context,
		date string,
	) (int64, error)
}
