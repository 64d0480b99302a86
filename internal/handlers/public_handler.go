package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowslot/salon-scheduler/internal/httperr"
	"github.com/glowslot/salon-scheduler/internal/httpresp"
	ucBooking "github.com/glowslot/salon-scheduler/internal/usecase/booking"
	"github.com/glowslot/salon-scheduler/internal/validators"

	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	nearby       *ucBooking.ListNearbySalons
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateAppointment
	loc          *time.Location
}

func NewPublicHandler(
	nearby *ucBooking.ListNearbySalons,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateAppointment,
	loc *time.Location,
) *PublicHandler {
	return &PublicHandler{
		nearby:       nearby,
		availability: availability,
		create:       create,
		loc:          loc,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateAppointmentRequest struct {
	SalonID       uint   `json:"salon_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"` // 2006-01-02T15:04:05
}

// ======================================================
// NEARBY SALONS
// ======================================================

func (h *PublicHandler) NearbySalons(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		httperr.BadRequest(c, "invalid_coordinates",
			"Valid 'latitude' and 'longitude' query parameters are required.")
		return
	}

	salons, err := h.nearby.Execute(c.Request.Context(), lat, lon)
	if err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Could not list nearby salons.")
		return
	}

	httpresp.List(c, salons)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	salonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_salon_id", "Salon id must be numeric.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "A 'date' query parameter is required.")
		return
	}

	date, err := parseDateIn(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	day, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			SalonID: uint(salonID),
			Date:    date,
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	if day.Closed {
		c.JSON(http.StatusOK, gin.H{"status": "closed"})
		return
	}

	c.JSON(http.StatusOK, day.Slots)
}

// ======================================================
// CREATE APPOINTMENT
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed booking fields.")
		return
	}

	if !validators.IsPhoneValid(req.CustomerPhone) {
		httperr.BadRequest(c, "invalid_phone", "Customer phone number is not valid.")
		return
	}

	start, err := parseStartTimeIn(h.loc, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time",
			"start_time must look like 2006-01-02T15:04:05.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateAppointmentInput{
			SalonID:       req.SalonID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			StartTime:     start,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeSalonNotFound):
		httperr.NotFound(c, httperr.CodeSalonNotFound, "Salon not found.")
	case httperr.IsBusiness(err, httperr.CodeSalonClosed):
		httperr.BadRequest(c, httperr.CodeSalonClosed,
			"No schedule found for this date. The salon is closed.")
	case httperr.IsBusiness(err, httperr.CodeSlotFull):
		httperr.Conflict(c, httperr.CodeSlotFull,
			"This time slot is now full. Please select another time.")
	case httperr.IsBusiness(err, httperr.CodeOutsideHours):
		httperr.BadRequest(c, httperr.CodeOutsideHours,
			"The requested time is outside the salon's opening hours.")
	case httperr.IsBusiness(err, httperr.CodeOffSlotGrid):
		httperr.BadRequest(c, httperr.CodeOffSlotGrid,
			"Appointments start every 15 minutes from opening time.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
	}
}
