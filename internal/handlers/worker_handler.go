package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/httperr"
	"github.com/BruksfildServices01/booking-web/internal/httpresp"
	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

// ======================================================
// WORKER DASHBOARD (weekly schedule grid)
// ======================================================

type WorkerHandler struct {
	backend *backend.Client
	store   *session.Store
	log     zerolog.Logger
}

func NewWorkerHandler(bc *backend.Client, store *session.Store, log zerolog.Logger) *WorkerHandler {
	return &WorkerHandler{backend: bc, store: store, log: log}
}

func (h *WorkerHandler) Dashboard(c *gin.Context) {
	appointments, err := h.backend.ListAppointments(c.Request.Context(), token(c))
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}
		h.log.Warn().Err(err).Msg("list appointments failed")
		appointments = nil
	}

	view := weekViewFromQuery(c, appointments)

	c.HTML(http.StatusOK, "dashboard_worker.html", pageData(c, gin.H{
		"View":  view,
		"Slots": scheduleSlots(),
	}))
}

// SlotDetail resolves one cell for the detail dialog.
func (h *WorkerHandler) SlotDetail(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("day"))
	if err != nil {
		httperr.BadRequest(c, "invalid_day", "Day must be YYYY-MM-DD.")
		return
	}
	hm := c.Query("time")
	if _, err := time.Parse("15:04", hm); err != nil {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return
	}

	appointments, err := h.backend.ListAppointments(c.Request.Context(), token(c))
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}
		h.log.Warn().Err(err).Msg("list appointments failed")
		appointments = nil
	}

	view := weekViewFromQuery(c, appointments)
	httpresp.OK(c, view.SlotStatus(day, hm))
}
