package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artikled/internal/auth"
	"artikled/internal/config"
	"artikled/internal/database"
	"artikled/internal/database/migration"
	handlers "artikled/internal/http/handler"
	"artikled/internal/http/middleware"
	"artikled/internal/otel"
	"artikled/internal/repository/postgres"
	"artikled/internal/service"
	"artikled/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC
	ctx := context.Background()

	// Tracing degrades to a noop provider when the collector is unreachable
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Create the schema on first boot; no-op when the tables already exist
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Media storage: local filesystem by default, S3-compatible when configured
	var store storage.Storage
	switch cfg.Storage.Backend {
	case "minio":
		store, err = storage.NewMinIO(cfg.Storage.MinIO)
	default:
		store, err = storage.NewLocal(cfg.Storage)
	}
	if err != nil {
		log.Fatalf("failed to initialize media storage: %v", err)
	}

	// Repositories, services, and the password-gated workflows
	articleRepo := postgres.NewArticlePostgres(db)
	commentRepo := postgres.NewCommentPostgres(db)
	articleSvc := service.NewArticleService(store, articleRepo)
	commentSvc := service.NewCommentService(articleRepo, commentRepo)

	gate := auth.NewGate(cfg.AdminPassword)
	editWf := service.NewEditWorkflow(gate, articleSvc)
	deleteWf := service.NewDeleteWorkflow(gate, articleSvc, commentSvc)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Article responses carry media URLs resolved by the storage backend:
	// under BaseURL for local storage, presigned object URLs for minio.
	// Only the local backend needs the static file route to serve them.
	if cfg.Storage.Backend != "minio" {
		app.Static(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	}

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, articleSvc, commentSvc, editWf, deleteWf)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
