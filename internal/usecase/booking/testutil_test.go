package booking

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/glowslot/salon-scheduler/internal/audit"
	"github.com/glowslot/salon-scheduler/internal/clock"
	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
	infraRepo "github.com/glowslot/salon-scheduler/internal/infra/repository"
	"github.com/glowslot/salon-scheduler/internal/models"
)

var testLoc = time.FixedZone("IST", 5*3600+30*60)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A single connection keeps the in-memory database shared and
	// serializes writers the way a row lock would.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.DailySchedule{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newRepo(db *gorm.DB) *infraRepo.BookingGormRepository {
	return infraRepo.NewBookingGormRepository(db)
}

func newDispatcher(db *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(db), zap.NewNop())
}

func newAvailability(db *gorm.DB, now time.Time) *GetAvailability {
	return NewGetAvailability(newRepo(db), clock.Fixed(now), testLoc)
}

func availabilityInputFor(salonID uint, y int, m time.Month, d int) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		SalonID: salonID,
		Date:    time.Date(y, m, d, 0, 0, 0, 0, testLoc),
	}
}

func seedSalon(t *testing.T, db *gorm.DB) models.Salon {
	t.Helper()

	salon := models.Salon{
		Name:        "Velvet Cut",
		Address:     "12 MG Road",
		PhoneNumber: "+919876543210",
		OpeningTime: "09:00",
		ClosingTime: "21:00",
	}
	if err := db.Create(&salon).Error; err != nil {
		t.Fatalf("seed salon: %v", err)
	}
	return salon
}

func seedSchedule(t *testing.T, db *gorm.DB, salonID uint, date string, workers int) models.DailySchedule {
	t.Helper()

	schedule := models.DailySchedule{
		SalonID:    salonID,
		Date:       date,
		NumWorkers: workers,
	}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return schedule
}
