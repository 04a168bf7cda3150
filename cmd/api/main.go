package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsletterapi/docs"
	"newsletterapi/internal/config"
	"newsletterapi/internal/database"
	"newsletterapi/internal/database/migration"
	handlers "newsletterapi/internal/http/handler"
	"newsletterapi/internal/http/middleware"
	"newsletterapi/internal/logging"
	tracing "newsletterapi/internal/otel"
	"newsletterapi/internal/repository"
	"newsletterapi/internal/repository/postgres"
	"newsletterapi/internal/repository/sqlite"
	"newsletterapi/internal/service"
)

// @title Newsletter API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	logger := logging.New(os.Stdout, loc)

	shutdownTracing, err := tracing.Init(context.Background(), logger)
	if err != nil {
		fatal(logger, "tracing_init_failed", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		fatal(logger, "db_connect_failed", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(context.Background(), db, cfg.Database.Driver, logger); err != nil {
		fatal(logger, "db_migration_failed", err)
	}

	svc := service.NewNewsletterService(newRepository(cfg.Database.Driver, db))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal(logger, "metrics_init_failed", err)
	}

	app := handlers.NewApp(cfg.PrettyJSON)

	// RequestID first so every later middleware and the error handler can read it
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db, svc, cfg.ErrorMode)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		logger.Info("server_starting",
			"addr", cfg.Addr(),
			"db_driver", cfg.Database.Driver,
			"error_mode", string(cfg.ErrorMode),
		)
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Error("server_error", "error", err.Error())
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("server_stopping")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server_shutdown_failed", "error", err.Error())
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracing_shutdown_failed", "error", err.Error())
	}
}

func newRepository(driver string, db *sql.DB) repository.NewsletterRepository {
	if driver == config.DriverPostgres {
		return postgres.NewNewsletterPostgres(db)
	}
	return sqlite.NewNewsletterSQLite(db)
}

func fatal(logger *slog.Logger, event string, err error) {
	logger.Error(event, "error", err.Error())
	os.Exit(1)
}
