package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/analytics"
	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/config"
	"github.com/BruksfildServices01/booking-web/internal/handlers"
	"github.com/BruksfildServices01/booking-web/internal/middleware"
	"github.com/BruksfildServices01/booking-web/internal/payments"
	"github.com/BruksfildServices01/booking-web/internal/places"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

type Deps struct {
	Backend  *backend.Client
	Store    *session.Store
	Places   *places.Client
	Payments *payments.Service
	Events   *analytics.Dispatcher
	Log      zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.SessionMiddleware(d.Store, cfg.DefaultLocale, d.Log))

	// ======================================================
	// HANDLERS
	// ======================================================
	homeHandler := handlers.NewHomeHandler(d.Backend, d.Store, d.Events, d.Log)
	authHandler := handlers.NewAuthHandler(d.Backend, d.Store, d.Log)
	customerHandler := handlers.NewCustomerHandler(d.Backend, d.Store, d.Log)
	businessHandler := handlers.NewBusinessHandler(d.Backend, d.Store, d.Log)
	workerHandler := handlers.NewWorkerHandler(d.Backend, d.Store, d.Log)
	placesHandler := handlers.NewPlacesHandler(d.Places, d.Log)
	paymentHandler := handlers.NewPaymentHandler(d.Payments, d.Store, d.Log)

	// ======================================================
	// PUBLIC PAGES
	// ======================================================
	r.GET("/", homeHandler.HomePage)
	r.POST("/book", homeHandler.Book)
	r.GET("/booking/confirmed", homeHandler.BookingConfirmed)

	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/signup", authHandler.SignupPage)
	r.POST("/signup", authHandler.Signup)
	r.POST("/logout", authHandler.Logout)

	// ======================================================
	// SELECTOR + PLACES JSON
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/selector/businesses", homeHandler.ListBusinesses)
		api.GET("/selector/workers", homeHandler.ListWorkers)
		api.GET("/selector/services", homeHandler.ListServices)

		api.GET("/places/autocomplete", placesHandler.Autocomplete)
		api.GET("/places/map", placesHandler.StaticMap)
	}

	// ======================================================
	// CUSTOMER DASHBOARD
	// ======================================================
	customer := r.Group("/")
	customer.Use(middleware.RequireSession())
	{
		customer.GET("/dashboard", customerHandler.Dashboard)
		customer.POST("/appointments/:id/cancel", customerHandler.Cancel)
		customer.POST("/appointments/:id/reschedule", customerHandler.Reschedule)

		customer.GET("/payment", paymentHandler.PaymentPage)
		customer.POST("/payment", paymentHandler.Pay)
	}

	// ======================================================
	// BUSINESS / WORKER SIDE (/appoint)
	// ======================================================
	appoint := r.Group("/appoint")
	{
		appoint.GET("/login", authHandler.LoginPage)
		appoint.POST("/login", authHandler.Login)
		appoint.GET("/signup", authHandler.SignupPage)
		appoint.POST("/signup", authHandler.Signup)
		appoint.POST("/logout", authHandler.Logout)

		secured := appoint.Group("/")
		secured.Use(middleware.RequireSession())
		{
			secured.GET("/dashboard", businessHandler.Dashboard)
			secured.POST("/working-hours", businessHandler.UpdateWorkingHours)

			secured.GET("/schedule", workerHandler.Dashboard)
			secured.GET("/schedule/slot", workerHandler.SlotDetail)
		}
	}
}
