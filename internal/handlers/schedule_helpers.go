package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/schedule"
)

// weekViewFromQuery builds the schedule view for the requested week. The
// `week` parameter carries the displayed week start; `nav` shifts it.
func weekViewFromQuery(c *gin.Context, appointments []backend.Appointment) *schedule.WeekView {
	view := schedule.NewWeekView(appointments, lang(c), time.Now())

	if raw := c.Query("week"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			view.WeekStart = schedule.WeekStartOf(t)
		}
	}

	switch c.Query("nav") {
	case "prev":
		view.PrevWeek()
	case "next":
		view.NextWeek()
	case "today":
		view.Today()
	}

	return view
}

func scheduleSlots() []string {
	return schedule.Slots()
}
