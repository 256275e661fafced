package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"agriquest/internal/api"
	"agriquest/internal/repository"
	"agriquest/internal/service"
	"agriquest/pkg/auth"
	"agriquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Storage)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}

	if err := repo.EnsureDefaultData(); err != nil {
		zapLogger.Fatal("Failed to seed default data", zap.Error(err))
	}

	userService := service.NewUserService(repo)
	questService := service.NewQuestService(repo)
	submissionService := service.NewSubmissionService(repo, repo, repo)
	settingsService := service.NewSettingsService(repo)

	jwtAuth := auth.NewJWTAuth(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api/v1")
	api.NewAuthRoutes(a, userService, jwtAuth)
	api.NewUserRoutes(a, userService, jwtAuth)
	api.NewQuestRoutes(a, questService, userService, settingsService, jwtAuth)
	api.NewSubmissionRoutes(a, submissionService, jwtAuth)
	api.NewSettingsRoutes(a, settingsService)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
