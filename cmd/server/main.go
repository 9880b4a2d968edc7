package main

import (
	"fmt"
	"os"

	"github.com/graphblog/api/internal/api"
	"github.com/graphblog/api/internal/config"
	"github.com/graphblog/api/internal/database"
	"github.com/graphblog/api/internal/database/repository"
	"github.com/graphblog/api/internal/database/service"
	"github.com/graphblog/api/internal/graph"
	"github.com/graphblog/api/internal/logger"
	"github.com/graphblog/api/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting GraphQL API...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	db, err := database.Connect(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	// 5. Initialize Login Limiter
	loginLimiter, err := middleware.NewLoginLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op login limiter", "error", err)
		loginLimiter = middleware.NewNoOpLoginLimiter(appLogger)
	}
	defer loginLimiter.Close()

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, cfg, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	postService := service.NewPostService(postRepo, appLogger)

	// 7. Parse Schema
	resolver := graph.NewResolver(authService, userService, postService, loginLimiter, appLogger)
	schema, err := graph.ParseSchema(resolver)
	if err != nil {
		appLogger.Error("❌ Failed to parse GraphQL schema", "error", err)
		os.Exit(1)
	}

	// 8. Setup Router & Middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.AuthBearerPrefix, appLogger)
	r := api.SetupRouter(schema, authMiddleware)

	// 9. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] Server ready",
		"url", fmt.Sprintf("http://localhost:%s/graphql", cfg.ApiServicePort),
	)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
