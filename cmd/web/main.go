package main

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/booking-web/internal/analytics"
	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/config"
	"github.com/BruksfildServices01/booking-web/internal/i18n"
	"github.com/BruksfildServices01/booking-web/internal/logging"
	"github.com/BruksfildServices01/booking-web/internal/payments"
	"github.com/BruksfildServices01/booking-web/internal/places"
	"github.com/BruksfildServices01/booking-web/internal/routes"
	"github.com/BruksfildServices01/booking-web/internal/schedule"
	"github.com/BruksfildServices01/booking-web/internal/session"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	store := session.NewStore(rdb)
	backendClient := backend.NewClient(cfg.BackendBaseURL, log)
	placesClient := places.NewClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, log)
	events := analytics.NewDispatcher(log, nil)

	paymentSvc, err := payments.New(cfg.MercadoPagoAccessToken, backendClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("payments init failed")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.SetFuncMap(template.FuncMap{
		"t":           i18n.T,
		"statusClass": schedule.StatusClass,
	})
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Deps{
		Backend:  backendClient,
		Store:    store,
		Places:   placesClient,
		Payments: paymentSvc,
		Events:   events,
		Log:      log,
	})

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
