package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowslot/salon-scheduler/internal/httperr"
	ucBooking "github.com/glowslot/salon-scheduler/internal/usecase/booking"
)

type StatsHandler struct {
	stats *ucBooking.GetStats
}

func NewStatsHandler(stats *ucBooking.GetStats) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not compute stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
