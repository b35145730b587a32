package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "mvpduo/cmd/duoctl/docs"
	"mvpduo/internal/adapter"
	"mvpduo/internal/cache"
	"mvpduo/internal/database"
	"mvpduo/internal/handler"
	"mvpduo/internal/logger"
	"mvpduo/internal/middleware"
	"mvpduo/internal/repository"
	"mvpduo/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		migrate, _ := cmd.Flags().GetBool("migrate")
		return runServer(migrate)
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "Apply pending migrations before serving")
}

func runServer(migrate bool) error {
	if err := cfg.ValidateServer(); err != nil {
		return err
	}
	appLogger := logger.Get()

	db, err := database.NewSQLXDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if migrate {
		if err := database.RunMigrations(db.DB); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	questionRepo := repository.NewSQLXQuestionRepository(db)
	dispatcher := service.NewDispatcher(cfg.Tasks.Timeout)
	progressionService := service.NewProgressionService(service.ProgressionDeps{
		Profiles:      repository.NewSQLXProfileRepository(db),
		Preferences:   repository.NewSQLXPreferencesRepository(db),
		Verifications: repository.NewSQLXVerificationRepository(db),
		Attempts:      repository.NewSQLXAttemptRepository(db),
		Achievements:  repository.NewSQLXAchievementRepository(db),
		Progress:      repository.NewSQLXProgressRepository(db),
		Questions:     service.NewQuestionSetCache(cacheAdapter, questionRepo, cfg.Cache.QuestionTTL),
		Sessions:      service.NewSessionStore(cacheAdapter, cfg.Session.TTL),
		Dispatcher:    dispatcher,
	}, cfg.Progression)
	appLogger.Info("ProgressionService initialized", zap.Bool("allowReplay", cfg.Progression.AllowReplay))

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create AuthService: %w", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.SetupRoutes(app, handler.Handlers{
		User:        handler.NewUserHandler(progressionService),
		Progression: handler.NewProgressionHandler(progressionService),
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"database": db.PingContext,
			"redis":    cacheAdapter.Ping,
		}, 2*time.Second),
	}, middleware.Protected(authService))

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		serverErr <- app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("server stopped: %w", err)
	case <-quit:
	}

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(ctx); err != nil {
		appLogger.Warn("Background tasks still running at shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
	return nil
}
