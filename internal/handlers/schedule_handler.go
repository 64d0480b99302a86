package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowslot/salon-scheduler/internal/audit"
	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
	"github.com/glowslot/salon-scheduler/internal/httperr"
	"github.com/glowslot/salon-scheduler/internal/httpresp"
	"github.com/glowslot/salon-scheduler/internal/middleware"
	"github.com/glowslot/salon-scheduler/internal/models"
)

type ScheduleHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewScheduleHandler(
	db *gorm.DB,
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:    db,
		repo:  repo,
		audit: dispatcher,
	}
}

type UpsertScheduleRequest struct {
	SalonID    uint   `json:"salon_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	NumWorkers int    `json:"num_workers" binding:"required,min=1"`
}

type UpdateScheduleRequest struct {
	NumWorkers int `json:"num_workers" binding:"required,min=1"`
}

func (h *ScheduleHandler) dispatch(c *gin.Context, action string, entityID *uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "daily_schedule",
		EntityID: entityID,
	})
}

func (h *ScheduleHandler) List(c *gin.Context) {
	q := h.db.Model(&models.DailySchedule{})

	if salonIDStr := c.Query("salon_id"); salonIDStr != "" {
		salonID, err := strconv.ParseUint(salonIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_salon_id", "Salon id must be numeric.")
			return
		}
		q = q.Where("salon_id = ?", salonID)
	}

	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var schedules []models.DailySchedule
	if err := q.Order("date ASC, salon_id ASC").Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not list schedules.")
		return
	}

	httpresp.List(c, schedules)
}

// Upsert creates the schedule for (salon, date), or updates the worker count
// when the pair already exists.
func (h *ScheduleHandler) Upsert(c *gin.Context) {
	var req UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed schedule fields.")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, req.SalonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Could not load salon.")
		return
	}

	schedule := models.DailySchedule{
		SalonID:    req.SalonID,
		Date:       req.Date,
		NumWorkers: req.NumWorkers,
	}

	if err := h.repo.UpsertSchedule(c.Request.Context(), &schedule); err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Could not save schedule.")
		return
	}

	h.dispatch(c, "schedule_upserted", &schedule.ID)

	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule_id", "Schedule id must be numeric.")
		return
	}

	var schedule models.DailySchedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeScheduleNotFound, "Schedule not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_schedule", "Could not load schedule.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "num_workers must be a positive integer.")
		return
	}

	schedule.NumWorkers = req.NumWorkers

	if err := h.db.Save(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_update_schedule", "Could not save schedule.")
		return
	}

	h.dispatch(c, "schedule_updated", &schedule.ID)

	c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule_id", "Schedule id must be numeric.")
		return
	}

	var schedule models.DailySchedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeScheduleNotFound, "Schedule not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_schedule", "Could not load schedule.")
		return
	}

	if err := h.db.Delete(&schedule).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_schedule", "Could not delete schedule.")
		return
	}

	h.dispatch(c, "schedule_deleted", &schedule.ID)

	c.Status(http.StatusNoContent)
}
