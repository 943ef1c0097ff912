package main

import (
	"advisoryboard/internal/app"
	"advisoryboard/internal/cache"
	"advisoryboard/internal/config"
	"advisoryboard/internal/logging"
	"advisoryboard/internal/repository"
	"advisoryboard/internal/service"
	"advisoryboard/internal/transport/rest"
	"advisoryboard/internal/transport/ws"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// @title Advisory Board API
// @version 1.0
// @description Multi-persona evaluation of business ideas
// @host localhost:8080
// @BasePath /v1
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	aiConfig := config.DefaultAIConfig()
	aggregator, err := app.NewAggregator(ctx, aiConfig, cfg.PersonasFile, logger)
	if err != nil {
		return err
	}

	if cfg.UsesDevSecret() {
		logger.Warn("JWT_SECRET not set, using development secret")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(context.Background())

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return err
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	db := mongoClient.Database(cfg.MongoDB)
	if err := repository.EnsureUserIndexes(pingCtx, db); err != nil {
		return err
	}
	if err := repository.EnsureEvaluationIndexes(pingCtx, db); err != nil {
		return err
	}

	// Redis connection
	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		return err
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return err
	}
	logger.Info("Connected to Redis", zap.String("addr", redisOpts.Addr))

	// Initialize WebSocket hub
	wsHub := ws.NewHub(logger)
	defer wsHub.Close()

	// Initialize repositories and caches
	userRepo := repository.NewUserRepo(db)
	evaluationRepo := repository.NewEvaluationRepo(db)
	tokenCache := cache.NewTokenCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tokenCache, cfg.JWTSecret, cfg.TokenTTL)
	evalSvc := service.NewEvaluationService(aggregator, evaluationRepo, logger)
	evalSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		Config:            cfg,
		AuthService:       authSvc,
		EvaluationService: evalSvc,
		WSHub:             wsHub,
		Logger:            logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr), zap.Bool("legacy_ask", cfg.LegacyAsk))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server exited")
	return nil
}
