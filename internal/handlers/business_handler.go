package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/i18n"
	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

// ======================================================
// BUSINESS DASHBOARD (/appoint side)
// ======================================================

type BusinessHandler struct {
	backend *backend.Client
	store   *session.Store
	log     zerolog.Logger
}

func NewBusinessHandler(bc *backend.Client, store *session.Store, log zerolog.Logger) *BusinessHandler {
	return &BusinessHandler{backend: bc, store: store, log: log}
}

func (h *BusinessHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	tok := token(c)

	appointments, err := h.backend.ListAppointments(ctx, tok)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}
		h.log.Warn().Err(err).Msg("list appointments failed")
		appointments = nil
	}

	// Degraded side panels render empty, same as the schedule.
	var workers []backend.Worker
	if sess := currentSession(c); sess != nil && sess.Profile.BusinessID != 0 {
		workers, err = h.backend.ListWorkers(ctx, sess.Profile.BusinessID)
		if err != nil {
			h.log.Warn().Err(err).Msg("list workers failed")
			workers = nil
		}
	}

	var services []backend.Service
	for _, w := range workers {
		svcs, err := h.backend.ListServices(ctx, w.ID)
		if err != nil {
			h.log.Warn().Err(err).Uint("worker_id", w.ID).Msg("list services failed")
			continue
		}
		services = append(services, svcs...)
	}

	hours, err := h.backend.WorkingHours(ctx, tok)
	if err != nil {
		h.log.Warn().Err(err).Msg("working hours fetch failed")
		hours = nil
	}

	view := weekViewFromQuery(c, appointments)

	c.HTML(http.StatusOK, "dashboard_business.html", pageData(c, gin.H{
		"View":     view,
		"Slots":    scheduleSlots(),
		"Workers":  workers,
		"Services": services,
		"Hours":    hours,
	}))
}

func (h *BusinessHandler) UpdateWorkingHours(c *gin.Context) {
	// One row per weekday, Monday first.
	hours := make([]backend.WorkingHours, 0, 7)
	for wd := 1; wd <= 7; wd++ {
		suffix := strconv.Itoa(wd % 7) // backend keeps Sunday=0
		hours = append(hours, backend.WorkingHours{
			Weekday:   wd % 7,
			StartTime: c.PostForm("start_" + suffix),
			EndTime:   c.PostForm("end_" + suffix),
			Active:    c.PostForm("active_"+suffix) == "on",
		})
	}

	err := h.backend.UpdateWorkingHours(c.Request.Context(), token(c), hours)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}
		h.log.Warn().Err(err).Msg("update working hours failed")
		c.HTML(http.StatusOK, "dashboard_business.html", pageData(c, gin.H{
			"Alert": i18n.T(lang(c), "error.generic"),
		}))
		return
	}

	c.Redirect(http.StatusSeeOther, "/appoint/dashboard")
}
