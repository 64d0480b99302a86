package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/glowslot/salon-scheduler/internal/audit"
	"github.com/glowslot/salon-scheduler/internal/clock"
	"github.com/glowslot/salon-scheduler/internal/config"
	"github.com/glowslot/salon-scheduler/internal/handlers"
	infraRepo "github.com/glowslot/salon-scheduler/internal/infra/repository"
	"github.com/glowslot/salon-scheduler/internal/middleware"
	"github.com/glowslot/salon-scheduler/internal/timezone"
	ucBooking "github.com/glowslot/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)
	clk := clock.System()

	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	nearbyUC := ucBooking.NewListNearbySalons(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, clk, loc)
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointmentsByDate(bookingRepo, loc)
	statsUC := ucBooking.NewGetStats(bookingRepo, clk, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(nearbyUC, availabilityUC, createAppointmentUC, loc)

	salonHandler := handlers.NewSalonHandler(db, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(db, bookingRepo, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(listAppointmentsUC, loc)
	statsHandler := handlers.NewStatsHandler(statsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC CUSTOMER FLOW
		// ------------------------------
		api.GET("/salons/nearby", publicHandler.NearbySalons)
		api.GET("/salons/:id/availability", publicHandler.Availability)
		api.POST("/appointments", publicHandler.CreateAppointment)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)

		// ------------------------------
		// ADMIN (JWT)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/salons", salonHandler.List)
			secured.GET("/salons/:id", salonHandler.Get)
			secured.POST("/salons", salonHandler.Create)
			secured.PATCH("/salons/:id", salonHandler.Update)
			secured.DELETE("/salons/:id", salonHandler.Delete)

			secured.GET("/schedules", scheduleHandler.List)
			secured.POST("/schedules", scheduleHandler.Upsert)
			secured.PATCH("/schedules/:id", scheduleHandler.Update)
			secured.DELETE("/schedules/:id", scheduleHandler.Delete)

			secured.GET("/salons/:id/appointments", appointmentHandler.ListByDate)

			secured.GET("/stats", statsHandler.Get)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
