package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Amin-Golden/GymWeb/internal/admin"
	"github.com/Amin-Golden/GymWeb/internal/client"
	"github.com/Amin-Golden/GymWeb/internal/config"
	"github.com/Amin-Golden/GymWeb/internal/dashboard"
	"github.com/Amin-Golden/GymWeb/internal/db"
	"github.com/Amin-Golden/GymWeb/internal/events"
	"github.com/Amin-Golden/GymWeb/internal/instructor"
	"github.com/Amin-Golden/GymWeb/internal/logger"
	"github.com/Amin-Golden/GymWeb/internal/membership"
	"github.com/Amin-Golden/GymWeb/internal/packages"
	"github.com/Amin-Golden/GymWeb/internal/payment"
	"github.com/Amin-Golden/GymWeb/internal/server"
	"github.com/Amin-Golden/GymWeb/internal/training"
	"github.com/Amin-Golden/GymWeb/internal/visit"

	"github.com/gin-gonic/gin"
)

// @title Gym Management API
// @version 1.0
// @description Back office API for gym admissions, memberships and payments.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	// config.Load has already applied .env, so LOG_LEVEL is visible here.
	logger.Init()
	gin.SetMode(cfg.GinMode)
	logger.Info("Starting gym management API")

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	var cache *dashboard.Cache
	if cfg.RedisAddr != "" {
		cache = dashboard.NewCache(cfg.RedisAddr, cfg.DashboardCacheTTL)
		defer cache.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := cache.Ping(pingCtx); err != nil {
			logger.Warn("Redis unreachable, dashboard cache will miss", "error", err)
		}
		cancel()
		logger.Info("Dashboard cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.DashboardCacheTTL)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		rabbit, err := events.NewRabbitPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, presence events disabled", "error", err)
		} else {
			publisher = rabbit
			logger.Info("Presence events enabled", "exchange", cfg.AMQPExchange)
		}
	}
	defer publisher.Close()

	memberships := membership.NewRepository(database)
	payments := payment.NewRepository(database)
	visits := visit.NewRepository(database)

	visitOpts := []visit.Option{visit.WithPublisher(publisher)}
	if cache != nil {
		visitOpts = append(visitOpts, visit.WithCacheInvalidator(cache))
	}

	srv := server.New(cfg, server.Handlers{
		Admin:       admin.NewHandler(admin.NewService(admin.NewRepository(database), cfg.JWTSecret)),
		Clients:     client.NewHandler(client.NewService(client.NewRepository(database), memberships, payments, visits)),
		Packages:    packages.NewHandler(packages.NewRepository(database)),
		Instructors: instructor.NewHandler(instructor.NewRepository(database)),
		Memberships: membership.NewHandler(memberships),
		Payments:    payment.NewHandler(payments),
		Training:    training.NewHandler(training.NewRepository(database)),
		Visits:      visit.NewHandler(visit.NewService(visits, membership.NewEligibility(memberships), visitOpts...)),
		Dashboard:   dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(database), visits, cache)),
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
