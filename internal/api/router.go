// Package api assembles the gin router from the individual handlers.
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ai-trip-planner/internal/handler"
	"ai-trip-planner/internal/logger"
	"ai-trip-planner/internal/middleware"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	TripHandler    *handler.TripHandler
	PaymentHandler *handler.PaymentHandler
	HealthHandler  *handler.HealthHandler
	CORSOrigins    []string
	Logger         *logger.Logger

	// GenerateLimit caps generation requests per IP per minute.
	// Zero disables the limiter (tests).
	GenerateLimit int
}

// NewRouter builds the routing table: health, trip lifecycle, and
// payment endpoints under /api.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health/ai", cfg.HealthHandler.AIHealth)

		trips := api.Group("/trips")
		{
			generate := trips.Group("")
			if cfg.GenerateLimit > 0 {
				limiter := middleware.NewRateLimiter(cfg.GenerateLimit, time.Minute)
				generate.Use(limiter.Middleware())
			}
			generate.POST("/generate", cfg.TripHandler.GenerateTrip)

			trips.GET("", cfg.TripHandler.ListTrips)
			trips.GET("/:id", cfg.TripHandler.GetTrip)
			trips.POST("/:id/book", cfg.TripHandler.BookTrip)
		}

		payments := api.Group("/payments")
		{
			payments.POST("/create-intent", cfg.PaymentHandler.CreateIntent)
			payments.POST("/confirm", cfg.PaymentHandler.ConfirmPayment)
		}
	}

	return r
}
