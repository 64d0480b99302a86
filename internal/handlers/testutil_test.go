package handlers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/glowslot/salon-scheduler/internal/audit"
	"github.com/glowslot/salon-scheduler/internal/clock"
	infraRepo "github.com/glowslot/salon-scheduler/internal/infra/repository"
	"github.com/glowslot/salon-scheduler/internal/models"
	ucBooking "github.com/glowslot/salon-scheduler/internal/usecase/booking"
)

var testLoc = time.FixedZone("IST", 5*3600+30*60)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
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

// newPublicAPI wires the customer-facing routes over a fresh database with a
// pinned clock, the same way routes.RegisterRoutes does for production.
func newPublicAPI(t *testing.T, now time.Time) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())

	h := NewPublicHandler(
		ucBooking.NewListNearbySalons(repo),
		ucBooking.NewGetAvailability(repo, clock.Fixed(now), testLoc),
		ucBooking.NewCreateAppointment(repo, dispatcher),
		testLoc,
	)

	r := gin.New()
	r.GET("/api/salons/nearby", h.NearbySalons)
	r.GET("/api/salons/:id/availability", h.Availability)
	r.POST("/api/appointments", h.CreateAppointment)
	return r, db
}

func seedSalon(t *testing.T, db *gorm.DB) models.Salon {
	t.Helper()

	s := models.Salon{
		Name:        "Velvet Cut",
		Address:     "14 MG Road",
		PhoneNumber: "+919876543210",
		OpeningTime: "09:00",
		ClosingTime: "21:00",
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed salon: %v", err)
	}
	return s
}

func seedSchedule(t *testing.T, db *gorm.DB, salonID uint, date string, workers int) {
	t.Helper()

	if err := db.Create(&models.DailySchedule{
		SalonID:    salonID,
		Date:       date,
		NumWorkers: workers,
	}).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
}
