package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
	"github.com/glowslot/salon-scheduler/internal/httperr"
	"github.com/glowslot/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) ListSalonsWithCoordinates(
	ctx context.Context,
) ([]models.Salon, error) {

	var salons []models.Salon
	if err := r.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id ASC").
		Find(&salons).Error; err != nil {
		return nil, err
	}
	return salons, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetSchedule(
	ctx context.Context,
	salonID uint,
	date string,
) (*models.DailySchedule, error) {

	var schedule models.DailySchedule
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND date = ?", salonID, date).
		First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *BookingGormRepository) UpsertSchedule(
	ctx context.Context,
	schedule *models.DailySchedule,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "salon_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"num_workers", "updated_at"}),
		}).
		Create(schedule).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CountAppointmentsAt(
	ctx context.Context,
	salonID uint,
	start time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("salon_id = ? AND start_time = ?", salonID, start).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	salonID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// BookAppointment locks the day's schedule row, re-checks the slot count and
// inserts, all inside one transaction. Concurrent bookings for the same
// (salon, date) serialize on the row lock, so the count can never overshoot
// NumWorkers.
func (r *BookingGormRepository) BookAppointment(
	ctx context.Context,
	ap *models.Appointment,
	date string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var schedule models.DailySchedule
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("salon_id = ? AND date = ?", ap.SalonID, date).
			First(&schedule).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeSalonClosed)
			}
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where("salon_id = ? AND start_time = ?", ap.SalonID, ap.StartTime).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= int64(schedule.NumWorkers) {
			return httperr.ErrBusiness(httperr.CodeSlotFull)
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *BookingGormRepository) CountSalons(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) CountAppointmentsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) CountSchedulesFrom(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DailySchedule{}).
		Where("date >= ?", date).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
