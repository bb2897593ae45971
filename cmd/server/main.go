package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tutorlane/tutorlane/internal/app"
	"github.com/tutorlane/tutorlane/internal/config"
	"github.com/tutorlane/tutorlane/internal/controller"
	"github.com/tutorlane/tutorlane/internal/repository"
	"github.com/tutorlane/tutorlane/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	ruleRepo := repository.NewAvailabilityRepository(pool)
	apptRepo := repository.NewAppointmentRepository(pool)
	scheduleRepo := repository.NewClassScheduleRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	classRepo := repository.NewClassRepository(pool)

	deps := controller.Deps{
		Availability: service.NewAvailabilityService(ruleRepo, apptRepo, scheduleRepo, profileRepo, logger),
		Booking:      service.NewBookingService(apptRepo, scheduleRepo, subjectRepo, profileRepo, logger),
		Schedule:     service.NewScheduleService(scheduleRepo, apptRepo, profileRepo, subjectRepo, classRepo, logger),
		Catalog:      service.NewCatalogService(subjectRepo, classRepo, profileRepo),
	}

	server := app.NewServer(deps, logger)

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := server.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	if err := server.Shutdown(); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
