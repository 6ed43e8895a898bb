package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/cmd"
	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	publisher, closePublisher, err := cmd.EventPublisher(configs, logger)
	if err != nil {
		log.Fatalf("Error connecting to message broker: %v", err)
	}

	app := cmd.NewCompositionRoot(gormDB, publisher, logger)

	jobManager := startJobs(app, configs, logger)

	e := newWebServer(app, logger)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()
	logger.Info("Back-office started", "port", configs.HTTPPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err := closePublisher(); err != nil {
		logger.Error("Closing message broker failed", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func startJobs(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	gauges, err := jobs.NewDashboardGauges(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Error registering dashboard gauges: %v", err)
	}

	dashboard := app.CreateGetDashboardQueryHandler()
	jobManager := jobs.NewJobManager(
		jobs.NewDashboardSnapshotJob(dashboard, gauges, configs.DashboardSnapshotSpec, logger),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func newWebServer(app cmd.CompositionRoot, logger *slog.Logger) *echo.Echo {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetDashboardQueryHandler(),
		app.CreateGetCustomersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		logger,
	)

	metrics, err := httpin.NewServerMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Error registering HTTP metrics: %v", err)
	}

	e, err := httpin.NewRouter(server, metrics, prometheus.DefaultGatherer, logger)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}
	return e
}
