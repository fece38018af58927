package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"country-exchange/core/apperr"
	"country-exchange/core/config"
	"country-exchange/core/database"
	"country-exchange/core/loader"
	"country-exchange/core/logger"
	"country-exchange/core/middleware/auth"
	"country-exchange/core/middleware/rayid"
	"country-exchange/core/storage"

	"country-exchange/feature/countries"
	"country-exchange/feature/countries/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "country-exchange/docs/swagger"
)

// @title Country Currency & Exchange API
// @version 1.0
// @description API for reconciled country, currency and exchange-rate data.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the country exchange server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (required; the dataset lives here)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		if err := models.Migrate(db); err != nil {
			logg.Fatal("Database migration failed", zap.Error(err))
		}

		// 4. Initialize Storage (summary artifacts)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			ErrorHandler:          apperr.NewFiberHandler(logg),
		})

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())

		// Request logging with Zap + RayID.
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return c.Next()
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Optional API key protection.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Service banner
		app.Get("/", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"message": "Country Currency & Exchange API",
				"version": "1.0.0",
				"endpoints": fiber.Map{
					"refresh": "POST /countries/refresh",
					"getAll":  "GET /countries",
					"getOne":  "GET /countries/:name",
					"delete":  "DELETE /countries/:name",
					"status":  "GET /status",
					"image":   "GET /countries/image",
				},
			})
		})

		// 6. Load Features
		mgr := loader.NewManager()
		mgr.Register(countries.NewFeature(db, store, cfg.Storage.Bucket, logg, cfg.Sources))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
