// @title WeddingHub API
// @version 1.0
// @description Guest lifecycle, vendor assignment and attendance analytics for wedding organizers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddinghub/config"
	_ "weddinghub/docs"
	"weddinghub/internal/adapters/auth"
	"weddinghub/internal/adapters/qrcode"
	delivery "weddinghub/internal/delivery/http"
	"weddinghub/internal/delivery/http/controllers"
	"weddinghub/internal/delivery/http/middleware"
	"weddinghub/internal/repository/postgres"
	"weddinghub/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := postgres.Connect(cfg.DBUrl, logger)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logger.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	guestRepo := postgres.NewGuestRepository(db)
	snapshotRepo := postgres.NewGuestSnapshotRepository(db)
	vendorRepo := postgres.NewVendorRepository(db)
	eventVendorRepo := postgres.NewEventVendorRepository(db)

	codec := qrcode.NewCodec()
	tokens := auth.NewJWTCodec(cfg.JWTSecret)

	eventSvc := services.NewEventService(logger, eventRepo)
	guestSvc := services.NewGuestService(logger, eventRepo, guestRepo, codec, cfg.PublicBaseURL)
	vendorSvc := services.NewVendorService(logger, eventRepo, vendorRepo, eventVendorRepo)
	analyticsSvc := services.NewAnalyticsService(logger, eventRepo, snapshotRepo)

	mux := delivery.NewRouter(
		db,
		tokens,
		controllers.NewEventController(logger, eventSvc),
		controllers.NewGuestController(logger, guestSvc),
		controllers.NewVendorController(logger, vendorSvc),
		controllers.NewAnalyticsController(logger, analyticsSvc),
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
