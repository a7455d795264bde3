package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siteapi/docs"
	"siteapi/internal/config"
	"siteapi/internal/database"
	"siteapi/internal/database/migration"
	handlers "siteapi/internal/http/handler"
	"siteapi/internal/http/middleware"
	"siteapi/internal/otel"
	"siteapi/internal/repository/postgres"
	"siteapi/internal/service"
	"siteapi/internal/storage"
)

// @title Site API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := time.UTC

	// Initialize tracing; shutdown flushes pending spans on exit
	shutdownTracing, err := otel.Init(context.Background(), loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(context.Background(), db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Select the object storage backend. MinIO is the default; the local
	// driver serves files from disk under /uploads for single-box deployments.
	var objStore storage.Storage
	switch cfg.Storage.Driver {
	case "local":
		objStore, err = storage.NewLocalDisk(cfg.Storage.LocalDir, cfg.Storage.BaseURL)
	default:
		objStore, err = storage.NewMinIO(cfg.MinIO)
	}
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize repositories and services
	galleryRepo := postgres.NewGalleryPostgres(db)
	landingRepo := postgres.NewLandingPostgres(db)
	enquiryRepo := postgres.NewEnquiryPostgres(db)
	placementRepo := postgres.NewPlacementPostgres(db)

	svcs := handlers.Services{
		Landing: service.NewLandingService(landingRepo),
		Gallery: service.NewGalleryService(objStore, galleryRepo, service.UploadLimits{
			MaxFiles:        cfg.Upload.MaxFiles,
			MaxFileSizeByte: int64(cfg.Upload.MaxFileSizeMiB) << 20,
		}),
		Enquiry:   service.NewEnquiryService(enquiryRepo),
		Placement: service.NewPlacementService(placementRepo),
	}

	app := fiber.New(fiber.Config{
		// Fiber's default 4 MiB body limit is below a single max-size upload
		BodyLimit:    cfg.Upload.BodyLimitBytes(),
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-Request-ID",
	}))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// OpenTelemetry spans per request
	app.Use(otelfiber.Middleware())

	// Prometheus request metrics plus the /metrics scrape endpoint
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Serve uploaded files directly when running on the local storage driver
	if cfg.Storage.Driver == "local" {
		app.Static("/uploads", cfg.Storage.LocalDir)
	}

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs)

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

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
