package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/analytics"
	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/booking"
	"github.com/BruksfildServices01/booking-web/internal/httpresp"
	"github.com/BruksfildServices01/booking-web/internal/i18n"
	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

// ======================================================
// HOME / BOOKING SELECTOR
// ======================================================

type HomeHandler struct {
	backend *backend.Client
	store   *session.Store
	events  *analytics.Dispatcher
	log     zerolog.Logger
}

func NewHomeHandler(bc *backend.Client, store *session.Store, events *analytics.Dispatcher, log zerolog.Logger) *HomeHandler {
	return &HomeHandler{backend: bc, store: store, events: events, log: log}
}

// selectorFromQuery rebuilds the funnel state from the request. Applying
// the choices in order makes every downstream reset happen exactly as it
// would on a live page.
func (h *HomeHandler) selectorFromQuery(c *gin.Context) *booking.Selector {
	ctx := c.Request.Context()
	sel := booking.NewSelector(h.backend, h.log)

	sel.LoadCategories(ctx)

	if id := queryUint(c, "category"); id != 0 {
		sel.SetCategory(ctx, id)
	}
	if id := queryUint(c, "business"); id != 0 {
		sel.SetBusiness(ctx, id)
	}
	if id := queryUint(c, "worker"); id != 0 {
		sel.SetWorker(ctx, id)
	}
	if id := queryUint(c, "service"); id != 0 {
		sel.SetService(id)
	}
	sel.SetDate(c.Query("date"))
	sel.SetTime(c.Query("time"))

	return sel
}

func (h *HomeHandler) HomePage(c *gin.Context) {
	sel := h.selectorFromQuery(c)

	h.events.Dispatch(analytics.Event{
		VisitorID: c.GetString(middleware.ContextVisitorID),
		Action:    "view_home",
		Entity:    "page",
	})

	c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
		"Selector": sel,
	}))
}

// --------- JSON endpoints per selector step ---------

func (h *HomeHandler) ListBusinesses(c *gin.Context) {
	id := queryUint(c, "category")

	out, err := h.backend.ListBusinesses(c.Request.Context(), id)
	if err != nil {
		h.log.Warn().Err(err).Uint("category_id", id).Msg("list businesses failed")
		out = nil
	}
	httpresp.List(c, out)
}

func (h *HomeHandler) ListWorkers(c *gin.Context) {
	id := queryUint(c, "business")

	out, err := h.backend.ListWorkers(c.Request.Context(), id)
	if err != nil {
		h.log.Warn().Err(err).Uint("business_id", id).Msg("list workers failed")
		out = nil
	}
	httpresp.List(c, out)
}

func (h *HomeHandler) ListServices(c *gin.Context) {
	id := queryUint(c, "worker")

	out, err := h.backend.ListServices(c.Request.Context(), id)
	if err != nil {
		h.log.Warn().Err(err).Uint("worker_id", id).Msg("list services failed")
		out = nil
	}
	httpresp.List(c, out)
}

// --------- Submission ---------

type bookRequest struct {
	Business uint   `form:"business"`
	Worker   uint   `form:"worker"`
	Service  uint   `form:"service"`
	Date     string `form:"date"`
	Time     string `form:"time"`

	CustomerName  string `form:"customer_name"`
	CustomerPhone string `form:"customer_phone"`
}

func (h *HomeHandler) Book(c *gin.Context) {
	var req bookRequest
	_ = c.ShouldBind(&req)

	ctx := c.Request.Context()
	sel := booking.NewSelector(h.backend, h.log)
	sel.SetBusiness(ctx, req.Business)
	sel.SetWorker(ctx, req.Worker)
	sel.SetService(req.Service)
	sel.SetDate(req.Date)
	sel.SetTime(req.Time)

	booked, err := sel.Submit(ctx, token(c), req.CustomerName, req.CustomerPhone)
	if err != nil {
		if errors.Is(err, booking.ErrIncomplete) {
			c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
				"Selector": sel,
				"Alert":    i18n.T(lang(c), "booking.incomplete"),
			}))
			return
		}
		if errors.Is(err, backend.ErrUnauthorized) {
			middleware.ForceLogout(c, h.store)
			return
		}

		c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
			"Selector": sel,
			"Alert":    i18n.T(lang(c), "booking.failed"),
		}))
		return
	}

	h.events.Dispatch(analytics.Event{
		VisitorID: c.GetString(middleware.ContextVisitorID),
		Action:    "booking_created",
		Entity:    "appointment",
		Metadata:  gin.H{"booking_id": booked.ID},
	})

	c.Redirect(http.StatusSeeOther, "/booking/confirmed")
}

func (h *HomeHandler) BookingConfirmed(c *gin.Context) {
	c.HTML(http.StatusOK, "confirmation.html", pageData(c, nil))
}

func queryUint(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
