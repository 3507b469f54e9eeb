package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"govdoc-manager/core/config"
	"govdoc-manager/core/database"
	"govdoc-manager/core/loader"
	"govdoc-manager/core/logger"
	"govdoc-manager/core/middleware/auth"
	"govdoc-manager/core/middleware/identitymw"
	"govdoc-manager/core/middleware/rayid"
	"govdoc-manager/core/storage"

	"govdoc-manager/feature/archive"
	"govdoc-manager/feature/governance"
	"govdoc-manager/feature/responsibility"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "govdoc-manager/docs/swagger"
)

// @title Governance Document Manager API
// @version 1.0
// @description API for the versioned governance and responsibility documents of an ITSM process.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document manager server",
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
		logg = logg.With(zap.String("process", cfg.Server.Process))

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		govFeature := governance.NewFeature(db, logg)
		respFeature := responsibility.NewFeature(db, logg)

		exports := map[string]archive.ExportFunc{
			"governance": func(ctx context.Context) (any, bool, error) {
				doc, found, err := govFeature.Service().Get(ctx, true)
				return doc, found, err
			},
			"responsibility": func(ctx context.Context) (any, bool, error) {
				doc, found, err := respFeature.Service().Get(ctx, true)
				return doc, found, err
			},
		}

		mgr.Register(govFeature)
		mgr.Register(respFeature)
		mgr.Register(archive.NewFeature(store, cfg.Storage.Bucket, logg, exports))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// API key guard
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Caller identity and roles from proxy headers
		app.Use(identitymw.New(cfg.Identity))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
