package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deepwork-scheduler/config"
	_ "deepwork-scheduler/docs" // Swagger docs
	"deepwork-scheduler/internal/httpserver"
	"deepwork-scheduler/internal/middleware"
	schedHTTP "deepwork-scheduler/internal/scheduler/delivery/http"
	"deepwork-scheduler/internal/scheduler/repository/rest"
	"deepwork-scheduler/internal/scheduler/usecase"
	"deepwork-scheduler/pkg/dates"
	"deepwork-scheduler/pkg/gcalendar"
	"deepwork-scheduler/pkg/log"
)

// @title       Deep-Work Time-Slot Scheduler API
// @description Maps days into capacity-bounded focus slots, reconciles calendar conflicts, ranks unscheduled work and commits multi-task assignments.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Deep-Work Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store: %s", cfg.TaskStore.URL)

	// 3. Clock
	clock, err := dates.NewClock(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		clock, _ = dates.NewClock("UTC")
	}

	// 4. Collaborators
	storeClient := rest.NewClient(cfg.TaskStore.URL, cfg.TaskStore.AccessToken)
	taskRepo := rest.NewTaskRepository(storeClient, clock, logger)
	ventureRepo := rest.NewVentureRepository(storeClient, time.Duration(cfg.Scheduler.VentureCacheTTLMin)*time.Minute, logger)

	// Google Calendar client (optional; absence means "no known conflicts")
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Scheduler domain
	schedulerUC := usecase.New(logger, taskRepo, ventureRepo, calendarClient, clock)
	schedulerHandler := schedHTTP.New(logger, schedulerUC, clock, schedHTTP.Config{
		SessionCapacity: cfg.Scheduler.SessionCapacity,
		SessionTTL:      time.Duration(cfg.Scheduler.SessionTTLMin) * time.Minute,
	})

	mw := middleware.New(logger, cfg.RateLimit.RequestsPerMin)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		SchedulerHandler: schedulerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
