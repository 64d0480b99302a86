package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowslot/salon-scheduler/internal/httperr"
	"github.com/glowslot/salon-scheduler/internal/httpresp"
	ucBooking "github.com/glowslot/salon-scheduler/internal/usecase/booking"
)

// AppointmentHandler serves the admin-side appointment listing; bookings
// themselves come in through the public handler.
type AppointmentHandler struct {
	list *ucBooking.ListAppointmentsByDate
	loc  *time.Location
}

func NewAppointmentHandler(
	list *ucBooking.ListAppointmentsByDate,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		list: list,
		loc:  loc,
	}
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
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

	appointments, err := h.list.Execute(c.Request.Context(), uint(salonID), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, appointments)
}
