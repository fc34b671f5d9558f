package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/i18n"
	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/payments"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

// ======================================================
// PAYMENTS
// ======================================================

type PaymentHandler struct {
	payments *payments.Service
	store    *session.Store
	log      zerolog.Logger
}

func NewPaymentHandler(ps *payments.Service, store *session.Store, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{payments: ps, store: store, log: log}
}

type payForm struct {
	BookingID       uint    `form:"booking_id" binding:"required"`
	Amount          float64 `form:"amount" binding:"required"`
	CardNumber      string  `form:"card_number" binding:"required"`
	ExpirationMonth string  `form:"exp_month" binding:"required"`
	ExpirationYear  string  `form:"exp_year" binding:"required"`
	SecurityCode    string  `form:"cvv" binding:"required"`
	HolderName      string  `form:"holder_name" binding:"required"`
}

func (h *PaymentHandler) PaymentPage(c *gin.Context) {
	c.HTML(http.StatusOK, "payment.html", pageData(c, gin.H{
		"BookingID": c.Query("booking_id"),
		"Amount":    c.Query("amount"),
	}))
}

func (h *PaymentHandler) Pay(c *gin.Context) {
	var form payForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "payment.html", pageData(c, gin.H{
			"Alert": i18n.T(lang(c), "payment.failed"),
		}))
		return
	}

	err := h.payments.Pay(c.Request.Context(), token(c), form.BookingID, form.Amount, payments.CardDetails{
		Number:          form.CardNumber,
		ExpirationMonth: form.ExpirationMonth,
		ExpirationYear:  form.ExpirationYear,
		SecurityCode:    form.SecurityCode,
		HolderName:      form.HolderName,
	})
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}
		c.HTML(http.StatusOK, "payment.html", pageData(c, gin.H{
			"Alert": i18n.T(lang(c), "payment.failed"),
		}))
		return
	}

	c.Redirect(http.StatusSeeOther, "/booking/confirmed")
}
