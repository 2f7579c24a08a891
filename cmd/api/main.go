package main

import (
	"fmt"
	"strings"
	"time"

	"firm-investment/internal/api/handlers"
	"firm-investment/internal/api/middleware"
	"firm-investment/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	// Configuration comes from the environment.
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("API_ENV", "development")
	v.SetDefault("MODEL_CACHE_TTL", time.Hour)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	production := v.GetString("API_ENV") == "production"
	logger, err := newLogger(production)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	if production {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS(splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS"))...))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	ttl := v.GetDuration("MODEL_CACHE_TTL")
	models := cache.New(ttl, ttl/4)
	defer models.Close()

	modelHandler := handlers.NewModelHandler(models, logger)
	parameterHandler := handlers.NewParameterHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "cached_models": models.Len()})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/parameters", parameterHandler.ListParameters)

		api.POST("/model", modelHandler.BuildModel)
		api.POST("/model/compare", modelHandler.CompareModels)
		api.GET("/model/:id", modelHandler.GetModel)
		api.GET("/model/:id/table", modelHandler.GetTable)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	addr := fmt.Sprintf(":%s", v.GetString("API_PORT"))
	logger.Info("starting API server", zap.String("addr", addr), zap.Duration("cache_ttl", ttl))
	if err := router.Run(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
