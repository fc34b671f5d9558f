package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/i18n"
	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

// ======================================================
// CUSTOMER DASHBOARD
// ======================================================

type CustomerHandler struct {
	backend *backend.Client
	store   *session.Store
	log     zerolog.Logger
}

func NewCustomerHandler(bc *backend.Client, store *session.Store, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{backend: bc, store: store, log: log}
}

func (h *CustomerHandler) Dashboard(c *gin.Context) {
	appointments, err := h.backend.ListAppointments(c.Request.Context(), token(c))
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}
		h.log.Warn().Err(err).Msg("list appointments failed")
		appointments = nil
	}

	c.HTML(http.StatusOK, "dashboard_customer.html", pageData(c, gin.H{
		"Appointments": appointments,
	}))
}

// Cancel round-trips through the backend; the redirect back to the
// dashboard refetches the whole list. No local mutation.
func (h *CustomerHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	err := h.backend.CancelAppointment(c.Request.Context(), token(c), id)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}
		h.log.Warn().Err(err).Str("appointment_id", id).Msg("cancel failed")
		c.HTML(http.StatusOK, "dashboard_customer.html", pageData(c, gin.H{
			"Alert": i18n.T(lang(c), "error.generic"),
		}))
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

type rescheduleForm struct {
	Date string `form:"date" binding:"required"`
	Time string `form:"time" binding:"required"`
}

func (h *CustomerHandler) Reschedule(c *gin.Context) {
	id := c.Param("id")

	var form rescheduleForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "dashboard_customer.html", pageData(c, gin.H{
			"Alert": i18n.T(lang(c), "error.generic"),
		}))
		return
	}

	err := h.backend.RescheduleAppointment(c.Request.Context(), token(c), id, form.Date, form.Time)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}
		h.log.Warn().Err(err).Str("appointment_id", id).Msg("reschedule failed")
		c.HTML(http.StatusOK, "dashboard_customer.html", pageData(c, gin.H{
			"Alert": i18n.T(lang(c), "error.generic"),
		}))
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}
