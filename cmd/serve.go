package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abraxas-365/recruitboard/internal/httpx"
	"github.com/Abraxas-365/recruitboard/internal/metrics"
	"github.com/Abraxas-365/recruitboard/internal/scheduler"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/Abraxas-365/recruitboard/recruitment/applicant/applicantapi"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard/dashboardapi"
	"github.com/Abraxas-365/recruitboard/recruitment/posting/postingapi"
	"github.com/Abraxas-365/recruitboard/recruitment/setting/settingapi"
	"github.com/Abraxas-365/recruitboard/recruitment/viewrecord/viewrecordapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	container := NewContainer(cfg)
	defer container.Close()

	app := httpx.NewApp(cfg.App.Name)

	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(cfg.API.CORSOrigins)))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(metrics.Middleware())

	app.Get("/metrics", metrics.Handler())
	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{"status": "ok", "database": "ok", "redis": "ok"}
		if err := container.DB.PingContext(c.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
		}
		if err := container.Redis.Ping(c.Context()).Err(); err != nil {
			status["status"] = "degraded"
			status["redis"] = err.Error()
		}
		return c.JSON(status)
	})

	// Routes
	container.AuthHandlers.RegisterRoutes(app)
	postingapi.RegisterRoutes(app, container.PostingHandlers, container.AuthMiddleware)
	applicantapi.RegisterRoutes(app, container.ApplicantHandlers, container.AuthMiddleware)
	viewrecordapi.RegisterRoutes(app, container.ViewRecordHandlers, container.AuthMiddleware)
	settingapi.RegisterRoutes(app, container.SettingHandlers, container.AuthMiddleware)
	dashboardapi.RegisterRoutes(app, container.DashboardHandlers, container.AuthMiddleware)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Report snapshots
	var sched *scheduler.Scheduler
	switch {
	case !cfg.Scheduler.Enabled:
	case container.Archive == nil:
		logx.Warn("scheduler enabled but no report archive is configured, snapshots are off")
	default:
		sched = scheduler.New(container.DashboardService, cfg.Scheduler.ReportSpec, container.Location)
		if err := sched.Start(ctx); err != nil {
			return err
		}
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		logx.Infof("Server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			logx.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logx.Info("Shutting down server...")
	cancel()
	if sched != nil {
		sched.Stop()
	}
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}
	logx.Info("Server exited")
	return nil
}

func corsConfig(origins string) cors.Config {
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}
}
