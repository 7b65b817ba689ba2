package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"edukamer/bootcamphub/internal/config"
	"edukamer/bootcamphub/internal/handler"
	"edukamer/bootcamphub/internal/model"
	"edukamer/bootcamphub/internal/repository"
	"edukamer/bootcamphub/internal/service"
	jwtpkg "edukamer/bootcamphub/pkg/jwt"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize state store (Redis or in-memory)
	var stateStore repository.StateStore
	switch cfg.State.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		stateStore = repository.NewRedisStateStore(redisClient)
		logger.Info("using Redis state store")
	case "memory":
		stateStore = repository.NewMemoryStateStore()
		logger.Info("using in-memory state store")
	default:
		logger.Fatal("unknown state backend", zap.String("backend", cfg.State.Backend))
	}

	// 6. Initialize repositories
	userRepo := repository.NewPGUserRepository(db)
	promotionRepo := repository.NewPGPromotionRepository(db)
	leadRepo := repository.NewPGLeadRepository(db)
	studentRepo := repository.NewPGStudentRepository(db)
	bootcampRepo := repository.NewPGBootcampRepository(db)
	enrollmentRepo := repository.NewPGEnrollmentRepository(db)

	// 7. Initialize JWT manager
	jwtManager := jwtpkg.NewManager(
		cfg.JWT.SigningKey,
		cfg.JWT.Issuer,
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
	)

	// 8. Initialize notifier (Telegram, or a no-op when unconfigured)
	notifier := service.NewTelegramNotifier(cfg.Telegram, logger)

	// 9. Initialize services
	authService := service.NewAuthService(userRepo, promotionRepo, stateStore, jwtManager, notifier)
	leadService := service.NewLeadService(leadRepo, userRepo, promotionRepo, notifier)
	promotionService := service.NewPromotionService(promotionRepo)
	studentService := service.NewStudentService(studentRepo)
	bootcampService := service.NewBootcampService(bootcampRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, studentRepo, bootcampRepo)

	// 10. Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	referralHandler := handler.NewReferralHandler(authService, leadService)
	leadHandler := handler.NewLeadHandler(leadService)
	promotionHandler := handler.NewPromotionHandler(promotionService)
	studentHandler := handler.NewStudentHandler(studentService)
	bootcampHandler := handler.NewBootcampHandler(bootcampService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)

	// 11. Setup router
	router := handler.SetupRouter(
		cfg, logger, jwtManager,
		authHandler, referralHandler, leadHandler,
		promotionHandler, studentHandler, bootcampHandler, enrollmentHandler,
	)

	// 12. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 13. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 14. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
