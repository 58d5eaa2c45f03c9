// @title Learn2Drive API
// @version 1.0
// @description Driving-school learner tracking: knowledge quizzes, road-sign tests, practical driving-test evaluations and the training checklist.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "learn2drive/cmd/api/docs"
	"learn2drive/internal/adapter"
	"learn2drive/internal/cache"
	"learn2drive/internal/config"
	"learn2drive/internal/database"
	"learn2drive/internal/handler"
	"learn2drive/internal/logger"
	"learn2drive/internal/middleware"
	"learn2drive/internal/repository"
	"learn2drive/internal/seed"
	"learn2drive/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Connect to database and bring the schema up to date
	db, err := database.Open(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if err := database.RunMigrations(ctx, db, cfg.DB.Driver, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Redis holds presented road-sign tests, so it is required
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Static content that is not part of the catalog tables
	drivingTest, err := seed.LoadDrivingTest(cfg.Seed.DataDir)
	if err != nil {
		appLogger.Fatal("Failed to load driving test rubric", zap.Error(err))
	}
	templates, err := seed.LoadPhaseTemplates(cfg.Seed.DataDir)
	if err != nil {
		appLogger.Fatal("Failed to load training phases", zap.Error(err))
	}
	notes, err := seed.LoadTeachingNotes(cfg.Seed.DataDir)
	if err != nil {
		appLogger.Fatal("Failed to load teaching notes", zap.Error(err))
	}
	appLogger.Info("Seed data loaded",
		zap.String("dir", cfg.Seed.DataDir),
		zap.Int("phases", len(templates)),
		zap.Int("automatic_fail_conditions", len(drivingTest.AutomaticFailConditions)))

	// Initialize repositories
	catalogRepository := service.NewCachedCatalogRepository(repository.NewCatalogDatabaseAdapter(db), cacheAdapter, cfg.Cache.CatalogTTL)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)
	learnerRepository := repository.NewLearnerDatabaseAdapter(db)
	trainingRepository := repository.NewTrainingDatabaseAdapter(db)
	drivingLogRepository := repository.NewDrivingLogDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	assessmentService := service.NewAssessmentService(
		catalogRepository,
		attemptRepository,
		learnerRepository,
		service.NewPresentedTestStore(cacheAdapter, cfg.Cache.PresentedTestTTL),
		nil,
		cfg.Assessment.Domain(),
		drivingTest.AutomaticFailConditions,
	)
	learnerService := service.NewLearnerService(learnerRepository, trainingRepository, txManager, templates, notes)
	trainingService := service.NewTrainingService(trainingRepository, txManager, notes)
	drivingLogService := service.NewDrivingLogService(drivingLogRepository, learnerRepository)
	appLogger.Info("Services initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", handler.NewHealthHandler(db, cacheAdapter).Health)

	handler.RegisterRoutes(app.Group("/api"),
		handler.NewAssessmentHandler(assessmentService),
		handler.NewLearnerHandler(learnerService),
		handler.NewTrainingHandler(trainingService),
		handler.NewDrivingLogHandler(drivingLogService),
	)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
