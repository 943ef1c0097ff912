package main

import (
	"advisoryboard/internal/config"
	"advisoryboard/internal/logging"
	"advisoryboard/internal/repository"
	"advisoryboard/internal/service"
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// seed creates a login so a fresh deployment can be used right away.
// Token revocation is not needed here, so no Redis connection is made.
func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	username := getEnv("SEED_USERNAME", "admin")
	password := getEnv("SEED_PASSWORD", "password123")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	if err := repository.EnsureUserIndexes(ctx, db); err != nil {
		logger.Fatal("Failed to create user indexes", zap.Error(err))
	}

	authSvc := service.NewAuthService(repository.NewUserRepo(db), nil, cfg.JWTSecret, cfg.TokenTTL)
	user, err := authSvc.Register(ctx, username, password)
	if errors.Is(err, service.ErrUserExists) {
		logger.Info("User already exists", zap.String("username", username))
		return
	}
	if err != nil {
		logger.Fatal("Failed to seed user", zap.Error(err))
	}

	logger.Info("Seeded user", zap.String("username", user.Username), zap.String("user_id", user.ID))
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
