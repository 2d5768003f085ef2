package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fitplanhub/fitplanhub/internal/api/handlers"
	"github.com/fitplanhub/fitplanhub/internal/api/router"
	"github.com/fitplanhub/fitplanhub/internal/config"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
	"github.com/fitplanhub/fitplanhub/internal/repository/store"
	"github.com/fitplanhub/fitplanhub/internal/services"
	"github.com/fitplanhub/fitplanhub/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := store.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := store.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database ready")

	userRepo := store.NewUserRepository(db)
	planRepo := store.NewPlanRepository(db)
	followRepo := store.NewFollowRepository(db)
	subRepo := store.NewSubscriptionRepository(db)

	userSvc := services.NewUserService(userRepo, cfg.Auth.BCryptCost, log)
	planSvc := services.NewPlanService(planRepo, subRepo, log)
	followSvc := services.NewFollowService(followRepo, userRepo, log)
	subSvc := services.NewSubscriptionService(subRepo, planRepo, log)
	feedSvc := services.NewFeedService(planRepo, followRepo, subRepo, userRepo, log)

	handler := router.New(cfg, log, router.Handlers{
		Auth:          handlers.NewAuthHandler(userSvc, cfg.Auth),
		Plans:         handlers.NewPlanHandler(planSvc),
		Follows:       handlers.NewFollowHandler(followSvc),
		Subscriptions: handlers.NewSubscriptionHandler(subSvc),
		Feed:          handlers.NewFeedHandler(feedSvc),
		Health:        handlers.NewHealthHandler(db),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := worker.NewExpirySweeper(subRepo, cfg.Worker.ExpirySchedule, log)
	if err := sweeper.Start(ctx); err != nil {
		log.Fatalf("Failed to start expiry sweeper: %v", err)
	}
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorWithErr(err, "Graceful shutdown failed")
	}
}
