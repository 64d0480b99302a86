package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowslot/salon-scheduler/internal/audit"
	"github.com/glowslot/salon-scheduler/internal/httperr"
	"github.com/glowslot/salon-scheduler/internal/httpresp"
	"github.com/glowslot/salon-scheduler/internal/middleware"
	"github.com/glowslot/salon-scheduler/internal/models"
	"github.com/glowslot/salon-scheduler/internal/validators"
)

type SalonHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSalonHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SalonHandler {
	return &SalonHandler{db: db, audit: dispatcher}
}

type CreateSalonRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address"`
	PhoneNumber string   `json:"phone_number"`
	OpeningTime string   `json:"opening_time"`
	ClosingTime string   `json:"closing_time"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type UpdateSalonRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	PhoneNumber *string  `json:"phone_number"`
	OpeningTime *string  `json:"opening_time"`
	ClosingTime *string  `json:"closing_time"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func validateSalonFields(c *gin.Context, opening, closing, phone string, lat, lon *float64) bool {
	if !isValidHM(opening) || !isValidHM(closing) {
		httperr.BadRequest(c, "invalid_hours", "Opening and closing times must be HH:MM.")
		return false
	}
	if !hoursOrdered(opening, closing) {
		httperr.BadRequest(c, "invalid_hours", "Opening time must be before closing time.")
		return false
	}
	if (lat == nil) != (lon == nil) {
		httperr.BadRequest(c, "invalid_coordinates", "Latitude and longitude must be set together.")
		return false
	}
	if phone != "" && !validators.IsPhoneValid(phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone number is not valid.")
		return false
	}
	return true
}

func (h *SalonHandler) dispatch(c *gin.Context, action string, entityID *uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "salon",
		EntityID: entityID,
	})
}

func (h *SalonHandler) List(c *gin.Context) {
	var salons []models.Salon
	if err := h.db.Order("id ASC").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Could not list salons.")
		return
	}

	httpresp.List(c, salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_salon_id", "Salon id must be numeric.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Could not load salon.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Create(c *gin.Context) {
	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed salon fields.")
		return
	}

	if req.OpeningTime == "" {
		req.OpeningTime = "09:00"
	}
	if req.ClosingTime == "" {
		req.ClosingTime = "21:00"
	}

	if !validateSalonFields(c, req.OpeningTime, req.ClosingTime, req.PhoneNumber, req.Latitude, req.Longitude) {
		return
	}

	salon := models.Salon{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := h.db.Create(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_create_salon", "Could not create salon.")
		return
	}

	h.dispatch(c, "salon_created", &salon.ID)

	c.JSON(http.StatusCreated, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_salon_id", "Salon id must be numeric.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Could not load salon.")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed salon fields.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		salon.PhoneNumber = *req.PhoneNumber
	}
	if req.OpeningTime != nil {
		salon.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		salon.ClosingTime = *req.ClosingTime
	}
	if req.Latitude != nil {
		salon.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		salon.Longitude = req.Longitude
	}

	if !validateSalonFields(c, salon.OpeningTime, salon.ClosingTime, salon.PhoneNumber, salon.Latitude, salon.Longitude) {
		return
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Could not save salon.")
		return
	}

	h.dispatch(c, "salon_updated", &salon.ID)

	c.JSON(http.StatusOK, salon)
}

// Delete removes the salon together with its schedules and appointments.
// The explicit child deletes keep the cascade dialect-independent.
func (h *SalonHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_salon_id", "Salon id must be numeric.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Could not load salon.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", salon.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("salon_id = ?", salon.ID).Delete(&models.DailySchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&salon).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_salon", "Could not delete salon.")
		return
	}

	h.dispatch(c, "salon_deleted", &salon.ID)

	c.Status(http.StatusNoContent)
}
