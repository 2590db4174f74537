// Command ai-trip-planner runs the trip planner HTTP API. main only
// wires dependencies together and manages the server lifecycle.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-trip-planner/internal/api"
	"ai-trip-planner/internal/booking"
	"ai-trip-planner/internal/config"
	"ai-trip-planner/internal/handler"
	"ai-trip-planner/internal/itinerary"
	"ai-trip-planner/internal/llm"
	"ai-trip-planner/internal/logger"
	"ai-trip-planner/internal/payment"
	"ai-trip-planner/internal/trip"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	// The generator stays constructible without a key so the rest of the
	// API keeps serving; /api/health/ai reports the degradation.
	var textGen llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logg.Fatal("failed to initialize Gemini client", "error", err)
		}
		if closer, ok := geminiClient.(llm.Closer); ok {
			defer closer.Close()
		}
		textGen = geminiClient
	} else {
		logg.Warn("GEMINI_API_KEY not set, itinerary generation is unavailable")
	}

	generator := itinerary.NewGenerator(textGen, logg)
	store := trip.NewStore(cfg.TripTTL)
	payments := payment.NewStripeClient(cfg.StripeSecretKey, cfg.StripeAPIURL)
	bookings := booking.NewService(store, payments, logg)

	router := api.NewRouter(api.RouterConfig{
		TripHandler:    handler.NewTripHandler(store, generator, bookings, cfg.GenerateTimeout, logg),
		PaymentHandler: handler.NewPaymentHandler(bookings, logg),
		HealthHandler:  handler.NewHealthHandler(generator),
		CORSOrigins:    cfg.CORSOrigins,
		Logger:         logg,
		GenerateLimit:  10,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GenerateTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logg.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server error", "error", err)
		}
	}()

	<-stop
	logg.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown error", "error", err)
	}
	logg.Info("server stopped")
}
